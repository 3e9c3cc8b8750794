package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"movieclub-backend/internal/config"
	"movieclub-backend/internal/slug"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PosterStore holds poster images uploaded by club members.
type PosterStore interface {
	GeneratePresignedURL(ctx context.Context, filename string) (uploadURL, publicURL string, err error)
	// Owns reports whether posterURL points into this store.
	Owns(posterURL string) bool
	Delete(ctx context.Context, posterURL string) error
}

const (
	posterPrefix  = "posters/"
	presignExpiry = 15 * time.Minute
)

var allowedPosterExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.BucketName)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		publicURL: publicURL,
		logger:    logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.ensureBucket(ctx); err != nil {
		logger.WithError(err).Warn("Failed to configure poster bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	// Posters are public; uploads still need a presigned URL.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s*"]
			}
		]
	}`, s.bucket, posterPrefix)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}
	return nil
}

// GeneratePresignedURL returns a PUT URL for a new poster object and the
// public URL the poster will be served from.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	objectName, err := posterObjectName(filename)
	if err != nil {
		return "", "", err
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.publicURL + "/" + objectName

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectName": objectName,
		"expiry":     presignExpiry,
	}).Info("Generated presigned poster URL")

	return presignedURL.String(), publicURL, nil
}

func (s *MinIOService) Owns(posterURL string) bool {
	_, ok := s.objectName(posterURL)
	return ok
}

func (s *MinIOService) Delete(ctx context.Context, posterURL string) error {
	objectName, ok := s.objectName(posterURL)
	if !ok {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("objectName", objectName).Error("Failed to delete poster")
		return fmt.Errorf("failed to delete poster: %w", err)
	}

	s.logger.WithField("objectName", objectName).Info("Poster deleted from MinIO")
	return nil
}

// objectName extracts the object key from a public poster URL, dropping
// any query string left by a presigned link.
func (s *MinIOService) objectName(posterURL string) (string, bool) {
	if posterURL == "" || !strings.HasPrefix(posterURL, s.publicURL+"/") {
		return "", false
	}
	rest := strings.TrimPrefix(posterURL, s.publicURL+"/")
	if u, err := url.Parse(rest); err == nil {
		rest = u.Path
	}
	if !strings.HasPrefix(rest, posterPrefix) {
		return "", false
	}
	return rest, true
}

func posterObjectName(filename string) (string, error) {
	base := path.Base(filepath.ToSlash(strings.TrimSpace(filename)))
	ext := strings.ToLower(filepath.Ext(base))
	if !allowedPosterExt[ext] {
		return "", invalid("filename", "unsupported poster type %q", ext)
	}
	name := slug.Derive(strings.TrimSuffix(base, filepath.Ext(base)))
	return fmt.Sprintf("%s%s_%s%s", posterPrefix, name, uuid.New().String()[:8], ext), nil
}
