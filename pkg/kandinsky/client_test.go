package kandinsky

import (
	"adboard/config"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.KandinskyConfig{
		URL:       srv.URL,
		APIKey:    "test-key",
		SecretKey: "test-secret",
	})
}

func TestGetModel(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/key/api/v1/models", r.URL.Path)
		require.Equal(t, "Key test-key", r.Header.Get("X-Key"))
		require.Equal(t, "Secret test-secret", r.Header.Get("X-Secret"))
		w.Write([]byte(`[{"id": 4, "name": "Kandinsky", "version": 3.1}]`))
	}))

	id, err := c.GetModel(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 4, id)
}

func TestGenerateSubmitsMultipart(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/key/api/v1/text2image/run", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "4", r.FormValue("model_id"))
		require.Contains(t, r.FormValue("params"), `"GENERATE"`)
		w.Write([]byte(`{"uuid": "req-123", "status": "INITIAL"}`))
	}))

	uuid, err := c.Generate(context.Background(), "卖自行车", 4)
	require.NoError(t, err)
	require.Equal(t, "req-123", uuid)
}

// 前两次轮询未就绪，第三次 DONE 返回图片
func TestCheckGenerationPollsUntilDone(t *testing.T) {
	imgData := []byte("fake-jpeg-bytes")
	encoded := base64.StdEncoding.EncodeToString(imgData)

	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/key/api/v1/text2image/status/"))
		if atomic.AddInt32(&calls, 1) < 3 {
			w.Write([]byte(`{"uuid": "req-123", "status": "PROCESSING"}`))
			return
		}
		w.Write([]byte(`{"uuid": "req-123", "status": "DONE", "images": ["` + encoded + `"]}`))
	}))

	data, err := c.CheckGeneration(context.Background(), "req-123", 5, time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, imgData, data)
	require.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestCheckGenerationAttemptsExhausted(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"uuid": "req-123", "status": "PROCESSING"}`))
	}))

	_, err := c.CheckGeneration(context.Background(), "req-123", 3, time.Millisecond)
	require.ErrorIs(t, err, ErrAttemptsExhausted)
}

func TestCheckGenerationFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"uuid": "req-123", "status": "FAIL", "errorDescription": "prompt rejected"}`))
	}))

	_, err := c.CheckGeneration(context.Background(), "req-123", 3, time.Millisecond)
	require.ErrorIs(t, err, ErrGenerationFailed)
	require.Contains(t, err.Error(), "prompt rejected")
}

func TestCheckGenerationContextCancel(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "PROCESSING"}`))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.CheckGeneration(ctx, "req-123", 10, 10*time.Second)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSanitizePrompt(t *testing.T) {
	// 控制字符被剔除
	require.Equal(t, "ab", SanitizePrompt("a\nb"))
	// 西里尔字符保留
	require.Equal(t, "продам велосипед", SanitizePrompt("продам велосипед"))
	// 超长截断
	long := strings.Repeat("x", 600)
	require.Len(t, SanitizePrompt(long), 500)
	// 高位字符剔除
	require.Equal(t, "bike", SanitizePrompt("bike😀"))
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	data := []byte("image-bytes")

	path, err := SaveImage(dir, "img_1.jpg", data)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "img_1.jpg"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

// 首选文件名写不进去时换备用名
func TestSaveImageFallbackName(t *testing.T) {
	dir := t.TempDir()
	// 带子目录的文件名两次写入都失败，落到最后的兜底名
	path, err := SaveImage(dir, "missing-subdir/img.jpg extra", []byte("x"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filepath.Base(path), "image"))
	require.Equal(t, dir, filepath.Dir(path))
}
