package service

import (
	"adboard/config"
	"adboard/dao"
	"adboard/models"
	"adboard/pkg/snowflake"
	"adboard/types"
	"adboard/pkg/log"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IStorageService = (*StorageService)(nil)

type IStorageService interface {
	UploadImage(ctx context.Context, userID uint64, advertisementID uint64, header *multipart.FileHeader) (*types.UploadImageResp, error)
	DeleteImage(ctx context.Context, userID uint64, isAdmin bool, imageID uint64) error
	UploadReader(ctx context.Context, reader io.Reader, objectKey string) error
	Delete(ctx context.Context, objectKey string) error
}

type StorageService struct {
	Client           *oss.Client
	BucketName       string
	ImageRepo        *dao.Image
	AdvertisementDAO *dao.AdvertisementDAO
}

func NewStorageService(cfg *config.OssConfig, imageRepo *dao.Image, advDAO *dao.AdvertisementDAO) IStorageService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &StorageService{
		Client:           oss.NewClient(ossCfg),
		BucketName:       cfg.Bucket,
		ImageRepo:        imageRepo,
		AdvertisementDAO: advDAO,
	}
}

// UploadImage 给公告上传配图
func (s *StorageService) UploadImage(ctx context.Context, userID uint64, advertisementID uint64, header *multipart.FileHeader) (*types.UploadImageResp, error) {

	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, fmt.Errorf("missing image")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("image size invalid")
	}

	adv, err := s.AdvertisementDAO.FindById(ctx, advertisementID)
	if err != nil {
		return nil, ErrAdvertisementNotFound
	}
	if adv.UserID != userID {
		return nil, ErrPermissionDenied
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 要能 Seek，否则无法在读头校验后再上传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// 1) MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 2) 读取尺寸 + 格式（不解码全图）
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	allowedFmt := map[string]bool{"jpeg": true, "png": true, "webp": true}
	if !allowedFmt[format] {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 3) 生成 ID / objectKey
	imageID := uint64(snowflake.GenID())
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("board/%s/%s%s",
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)

	// 4) 上传 OSS（强制限制读取）
	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	// 5) 写 image 表
	img := models.Image{
		ID:              imageID,
		AdvertisementID: advertisementID,
		UserID:          userID,
		FileKey:         objectKey,
		Source:          models.ImageSourceUpload,
		CreatedAt:       time.Now(),
	}
	if err := s.ImageRepo.CreateImage(ctx, &img); err != nil {
		return nil, err
	}

	return &types.UploadImageResp{
		ImageID: imageID,
		Url:     "https://cdn.adboard.cn/" + objectKey,
		Width:   cfg.Width,
		Height:  cfg.Height,
	}, nil
}

// DeleteImage 删除公告图片，公告作者或管理员可操作。
// OSS 对象清理失败只记日志，行照常删除。
func (s *StorageService) DeleteImage(ctx context.Context, userID uint64, isAdmin bool, imageID uint64) error {
	img, err := s.ImageRepo.FindById(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}

	adv, err := s.AdvertisementDAO.FindById(ctx, img.AdvertisementID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if adv != nil && adv.UserID != userID && !isAdmin {
		return ErrPermissionDenied
	}

	if img.Source == models.ImageSourceUpload {
		if err := s.Delete(ctx, img.FileKey); err != nil {
			log.L.Error("delete oss object", zap.String("file_key", img.FileKey), zap.Error(err))
		}
	}

	_, err = s.ImageRepo.DeleteByWhere(ctx, "id = ?", imageID)
	return err
}

// UploadReader 上传 Reader（生成图落 OSS 场景）
func (s *StorageService) UploadReader(ctx context.Context, reader io.Reader, objectKey string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	return err
}

// Delete 删除对象
func (s *StorageService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
