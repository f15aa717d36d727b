package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
	cfg "github.com/maheshrc27/creatorflow/configs"
)

const MaxImageSize = 10 << 20

// ObjectPutter is the part of the S3 client the media service needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type MediaService interface {
	// UploadImage stores an image and returns its public URL. The URL is
	// empty when no storage is configured.
	UploadImage(ctx context.Context, userID int64, file []byte) (string, error)
}

type mediaService struct {
	config cfg.R2

	once   sync.Once
	client ObjectPutter
	err    error
}

func NewMediaService(c cfg.R2) MediaService {
	return &mediaService{config: c}
}

// NewMediaServiceWithClient uses client instead of building an R2 client.
func NewMediaServiceWithClient(c cfg.R2, client ObjectPutter) MediaService {
	s := &mediaService{config: c, client: client}
	s.once.Do(func() {})
	return s
}

func (r *mediaService) r2Client(ctx context.Context) (ObjectPutter, error) {
	r.once.Do(func() {
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.AccessKey, r.config.SecretKey, "")),
			config.WithRegion("auto"),
		)
		if err != nil {
			slog.Info(err.Error())
			r.err = err
			return
		}
		r.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.AccountID))
		})
	})
	return r.client, r.err
}

func (r *mediaService) UploadImage(ctx context.Context, userID int64, file []byte) (string, error) {
	if len(file) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidImage)
	}
	if len(file) > MaxImageSize {
		return "", fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, MaxImageSize)
	}

	kind, err := filetype.Match(file)
	if err != nil || !filetype.IsImage(file) {
		return "", fmt.Errorf("%w: unsupported file type", ErrInvalidImage)
	}

	if r.client == nil && !r.config.Configured() {
		slog.Info("image storage not configured, skipping upload")
		return "", nil
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	key := fmt.Sprintf("ratings/%d/%s.%s", userID, id, kind.Extension)

	client, err := r.r2Client(ctx)
	if err != nil {
		return "", err
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(kind.MIME.Value),
	})
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return strings.TrimRight(r.config.PublicURL, "/") + "/" + key, nil
}
