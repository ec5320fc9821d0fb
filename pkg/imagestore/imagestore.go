// Package imagestore keeps user images in S3-compatible object storage and
// hands out their public URLs.
package imagestore

//go:generate mockgen -source=imagestore.go -destination=../../internal/mocks/mock_image_store.go -package=mocks -exclude_interfaces=objectAPI

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	FolderProfilePics = "chat_profile_pics"
	FolderMessages    = "chat_messages"
)

// Store uploads local image files and deletes them again by URL.
type Store interface {
	Upload(ctx context.Context, localPath, folder string) (string, error)
	Delete(ctx context.Context, url string) error
}

// objectAPI is the subset of *s3.Client the store calls.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Config struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

type S3Store struct {
	api     objectAPI
	bucket  string
	baseURL string
}

// NewS3Store builds a client against cfg.Endpoint. Static credentials are
// used when both keys are set, the default AWS chain otherwise.
func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("imagestore: bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("imagestore: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, cfg.Bucket, cfg.PublicBaseURL), nil
}

func newS3Store(api objectAPI, bucket, baseURL string) *S3Store {
	return &S3Store{api: api, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload stores the file under <folder>/<uuid><ext> and returns its URL.
func (s *S3Store) Upload(ctx context.Context, localPath, folder string) (string, error) {
	mtype, err := mimetype.DetectFile(localPath)
	if err != nil {
		return "", fmt.Errorf("imagestore: sniff %s: %w", localPath, err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("imagestore: open: %w", err)
	}
	defer f.Close()

	key := path.Join(folder, uuid.New().String()+mtype.Extension())
	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(mtype.String()),
	})
	if err != nil {
		return "", fmt.Errorf("imagestore: put %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

// Delete removes the object behind url. URLs outside the public base are
// ignored.
func (s *S3Store) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFor(url)
	if !ok {
		return nil
	}
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("imagestore: delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) keyFor(url string) (string, bool) {
	prefix := s.baseURL + "/"
	if s.baseURL == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
