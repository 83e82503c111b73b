package storage

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MenuDoce/cardapio-api/internal/config"
	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
)

// Buckets por tipo de imagem.
const (
	BucketLogos    = "logos"
	BucketBanners  = "banners"
	BucketProdutos = "products"
)

type S3Store struct {
	client    *s3.Client
	publicURL string
}

func NewS3Store(cfg *config.Config) *S3Store {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = cfg.S3Endpoint
	}

	return &S3Store{
		client:    s3.New(opts),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *S3Store) Upload(
	ctx context.Context,
	data []byte,
	contentType string,
	bucket string,
	path string,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(path),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return "", err
	}

	return s.publicURL + "/" + bucket + "/" + path, nil
}

func (s *S3Store) Delete(ctx context.Context, bucket, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(path),
	})
	return err
}

var _ tenant.ImageStore = (*S3Store)(nil)
