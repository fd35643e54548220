package service

import (
	"adboard/config"
	"adboard/dao"
	"adboard/models"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGenerationService(t *testing.T, db *gorm.DB, handler http.Handler) *GenerationService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.KandinskyConfig{
		URL:          srv.URL,
		APIKey:       "test-key",
		SecretKey:    "test-secret",
		Workers:      2,
		PollAttempts: 5,
		PollDelay:    time.Millisecond,
		JobTimeout:   5 * time.Second,
	}
	appCfg := &config.App{MediaRoot: t.TempDir()}

	return NewGenerationService(cfg, appCfg,
		dao.NewGenerationJobDAO(db),
		dao.NewImage(db),
		dao.NewAdvertisementDAO(db),
	)
}

// waitForJob 轮询等待后台任务出结果
func waitForJob(t *testing.T, svc *GenerationService, jobID uint64) *models.GenerationJob {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := svc.GetJob(context.Background(), jobID)
		require.NoError(t, err)
		if job.Status == models.GenerationStatusDone || job.Status == models.GenerationStatusFailed {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %d did not finish in time", jobID)
	return nil
}

func kandinskyStub(done <-chan struct{}) http.Handler {
	encoded := base64.StdEncoding.EncodeToString([]byte("generated-jpeg"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/key/api/v1/models":
			w.Write([]byte(`[{"id": 4}]`))
		case r.URL.Path == "/key/api/v1/text2image/run":
			w.Write([]byte(`{"uuid": "req-1", "status": "INITIAL"}`))
		case strings.HasPrefix(r.URL.Path, "/key/api/v1/text2image/status/"):
			if done != nil {
				<-done
			}
			w.Write([]byte(`{"status": "DONE", "images": ["` + encoded + `"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// 完整流程：触发 -> 后台生成 -> 任务 done，图片落库落盘
func TestGenerationLifecycle(t *testing.T) {
	db := newTestDB(t)
	adv := seedAdvertisement(t, db, 1)
	svc := newGenerationService(t, db, kandinskyStub(nil))
	ctx := context.Background()

	job, err := svc.Trigger(ctx, 1, adv.ID)
	require.NoError(t, err)
	require.Equal(t, models.GenerationStatusPending, job.Status)
	require.NotEmpty(t, job.Prompt)

	got := waitForJob(t, svc, job.ID)
	require.Equal(t, models.GenerationStatusDone, got.Status)
	require.NotEmpty(t, got.FileKey)

	data, err := os.ReadFile(got.FileKey)
	require.NoError(t, err)
	require.Equal(t, []byte("generated-jpeg"), data)

	var img models.Image
	require.NoError(t, db.Where("advertisement_id = ?", adv.ID).First(&img).Error)
	require.Equal(t, models.ImageSourceGenerated, img.Source)
	require.Equal(t, got.FileKey, img.FileKey)
}

func TestGenerationUnknownAdvertisement(t *testing.T) {
	db := newTestDB(t)
	svc := newGenerationService(t, db, kandinskyStub(nil))

	_, err := svc.Trigger(context.Background(), 1, 777777)
	require.ErrorIs(t, err, ErrAdvertisementNotFound)
}

// 同一公告只允许一个在途任务
func TestGenerationDeduplicatesInFlight(t *testing.T) {
	db := newTestDB(t)
	adv := seedAdvertisement(t, db, 1)

	release := make(chan struct{})
	svc := newGenerationService(t, db, kandinskyStub(release))
	ctx := context.Background()

	_, err := svc.Trigger(ctx, 1, adv.ID)
	require.NoError(t, err)

	_, err = svc.Trigger(ctx, 1, adv.ID)
	require.ErrorIs(t, err, ErrGenerationInFlight)

	close(release)

	// 任务结束后可以再次触发
	var second *models.GenerationJob
	deadline := time.Now().Add(5 * time.Second)
	for {
		if second, err = svc.Trigger(ctx, 1, adv.ID); err == nil {
			break
		}
		require.ErrorIs(t, err, ErrGenerationInFlight)
		if !time.Now().Before(deadline) {
			t.Fatal("in-flight marker was never released")
		}
		time.Sleep(5 * time.Millisecond)
	}
	waitForJob(t, svc, second.ID)
}

// 服务端返回 FAIL 时任务记为 failed 并保留错误详情
func TestGenerationFailureRecorded(t *testing.T) {
	db := newTestDB(t)
	adv := seedAdvertisement(t, db, 1)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/key/api/v1/models":
			w.Write([]byte(`[{"id": 4}]`))
		case r.URL.Path == "/key/api/v1/text2image/run":
			w.Write([]byte(`{"uuid": "req-1"}`))
		default:
			w.Write([]byte(`{"status": "FAIL", "errorDescription": "censored"}`))
		}
	})
	svc := newGenerationService(t, db, handler)
	ctx := context.Background()

	job, err := svc.Trigger(ctx, 1, adv.ID)
	require.NoError(t, err)

	got := waitForJob(t, svc, job.ID)
	require.Equal(t, models.GenerationStatusFailed, got.Status)
	require.Contains(t, got.Error, "censored")
}
