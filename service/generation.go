package service

import (
	"adboard/config"
	"adboard/dao"
	"adboard/models"
	"adboard/pkg/kandinsky"
	"adboard/pkg/log"
	"adboard/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IGenerationService = (*GenerationService)(nil)

type IGenerationService interface {
	Trigger(ctx context.Context, userID uint64, advertisementID uint64) (*models.GenerationJob, error)
	GetJob(ctx context.Context, jobID uint64) (*models.GenerationJob, error)
	Wait()
}

// GenerationService 公告配图的文生图后台任务。
// 每条公告同一时间只允许一个在途任务，由 inflight 表去重。
// 任务在固定大小的协程池里跑，整体受 JobTimeout 约束。
type GenerationService struct {
	cfg              *config.KandinskyConfig
	appCfg           *config.App
	client           *kandinsky.Client
	jobDAO           *dao.GenerationJobDAO
	imageDAO         *dao.Image
	advertisementDAO *dao.AdvertisementDAO

	workers  *pool.Pool
	inflight cmap.ConcurrentMap[string, uint64]
}

func NewGenerationService(
	cfg *config.KandinskyConfig,
	appCfg *config.App,
	jobDAO *dao.GenerationJobDAO,
	imageDAO *dao.Image,
	advertisementDAO *dao.AdvertisementDAO,
) *GenerationService {
	return &GenerationService{
		cfg:              cfg,
		appCfg:           appCfg,
		client:           kandinsky.NewClient(cfg),
		jobDAO:           jobDAO,
		imageDAO:         imageDAO,
		advertisementDAO: advertisementDAO,
		workers:          pool.New().WithMaxGoroutines(cfg.WorkerCount()),
		inflight:         cmap.New[uint64](),
	}
}

// Trigger 为公告发起一次图片生成，立刻返回任务记录，生成在后台执行
func (s *GenerationService) Trigger(ctx context.Context, userID uint64, advertisementID uint64) (*models.GenerationJob, error) {
	adv, err := s.advertisementDAO.FindById(ctx, advertisementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdvertisementNotFound
		}
		return nil, err
	}

	key := fmt.Sprintf("%d", advertisementID)
	now := time.Now()
	job := &models.GenerationJob{
		ID:              uint64(snowflake.GenID()),
		AdvertisementID: advertisementID,
		UserID:          userID,
		Prompt:          kandinsky.SanitizePrompt(adv.Title + " " + adv.Content),
		Status:          models.GenerationStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if !s.inflight.SetIfAbsent(key, job.ID) {
		return nil, ErrGenerationInFlight
	}
	if err := s.jobDAO.Create(ctx, job); err != nil {
		s.inflight.Remove(key)
		return nil, err
	}

	s.workers.Go(func() {
		defer s.inflight.Remove(key)
		s.run(job)
	})
	return job, nil
}

func (s *GenerationService) GetJob(ctx context.Context, jobID uint64) (*models.GenerationJob, error) {
	job, err := s.jobDAO.FindById(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("生成任务不存在")
		}
		return nil, err
	}
	return job, nil
}

// Wait 等待所有在途任务结束，进程退出前调用
func (s *GenerationService) Wait() {
	s.workers.Wait()
}

func (s *GenerationService) run(job *models.GenerationJob) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout())
	defer cancel()

	if err := s.jobDAO.MarkRunning(ctx, job.ID); err != nil {
		log.L.Error("mark generation job running", zap.Uint64("job_id", job.ID), zap.Error(err))
	}

	path, err := s.generate(ctx, job)
	if err != nil {
		log.L.Error("generation job failed",
			zap.Uint64("job_id", job.ID),
			zap.Uint64("advertisement_id", job.AdvertisementID),
			zap.Error(err))
		if dbErr := s.jobDAO.MarkFailed(ctx, job.ID, err.Error()); dbErr != nil {
			log.L.Error("mark generation job failed", zap.Uint64("job_id", job.ID), zap.Error(dbErr))
		}
		return
	}

	if err := s.jobDAO.MarkDone(ctx, job.ID, path); err != nil {
		log.L.Error("mark generation job done", zap.Uint64("job_id", job.ID), zap.Error(err))
	}
	log.L.Info("generation job done",
		zap.Uint64("job_id", job.ID),
		zap.Uint64("advertisement_id", job.AdvertisementID),
		zap.String("file_key", path))
}

func (s *GenerationService) generate(ctx context.Context, job *models.GenerationJob) (string, error) {
	modelID, err := s.client.GetModel(ctx)
	if err != nil {
		return "", err
	}

	requestID, err := s.client.Generate(ctx, job.Prompt, modelID)
	if err != nil {
		return "", err
	}

	data, err := s.client.CheckGeneration(ctx, requestID, s.cfg.Attempts(), s.cfg.Delay())
	if err != nil {
		return "", err
	}

	now := time.Now()
	dir := filepath.Join(s.appCfg.MediaRoot, "images", "kandinsky",
		fmt.Sprintf("%d_%d", now.Year(), now.Month()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("img_%d.jpg", now.UnixNano())
	path, err := kandinsky.SaveImage(dir, fileName, data)
	if err != nil {
		return "", err
	}

	img := &models.Image{
		ID:              uint64(snowflake.GenID()),
		AdvertisementID: job.AdvertisementID,
		UserID:          job.UserID,
		FileKey:         path,
		Source:          models.ImageSourceGenerated,
		CreatedAt:       time.Now(),
	}
	if err := s.imageDAO.CreateImage(ctx, img); err != nil {
		return "", err
	}
	return path, nil
}
