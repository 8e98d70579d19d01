package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"film-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const presignExpiry = 15 * time.Minute

// MinIOService hands out upload URLs for poster images and removes the
// poster of a film that is deleted or given a new imageUrl. It does not check
// whether another film points at the same object.
type MinIOService struct {
	client    *minio.Client
	bucket    string
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

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + endpoint + "/" + cfg.BucketName
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := service.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	if err := s.client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy(s.bucket)); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, bucket)
}

// GeneratePresignedURL returns a PUT URL for uploading a poster and the
// public URL the poster will be readable at, suitable for a film's imageUrl.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	objectName := uniqueObjectName(filename)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectName": objectName,
		"expiry":     presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), s.publicURL + "/" + objectName, nil
}

// OwnsURL reports whether rawURL points at an object in this service's bucket.
func (s *MinIOService) OwnsURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, s.publicURL+"/")
}

func (s *MinIOService) DeleteFile(ctx context.Context, objectPath string) error {
	objectName := objectNameFromURL(objectPath, s.bucket, s.publicURL)

	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectName", objectName).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectName", objectName).Info("File deleted successfully from MinIO")
	return nil
}

func uniqueObjectName(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" {
		base = "poster"
	}
	ext := path.Ext(base)
	nameWithoutExt := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%s%s", nameWithoutExt, uuid.New().String()[:8], ext)
}

// objectNameFromURL accepts a URL under publicURL, a presigned or path-style
// bucket URL, or a bare object name, and returns the object name within bucket.
func objectNameFromURL(objectPath, bucket, publicURL string) string {
	if publicURL != "" && strings.HasPrefix(objectPath, publicURL+"/") {
		objectPath = strings.TrimPrefix(objectPath, publicURL+"/")
		if idx := strings.IndexAny(objectPath, "?#"); idx != -1 {
			objectPath = objectPath[:idx]
		}
		return objectPath
	}
	if u, err := url.Parse(objectPath); err == nil && u.Scheme != "" {
		objectPath = u.Path
	}
	objectPath = strings.TrimPrefix(objectPath, "/")
	objectPath = strings.TrimPrefix(objectPath, bucket+"/")
	return objectPath
}
