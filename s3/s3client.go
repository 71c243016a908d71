package s3client

import (
	"bytes"
	"context"
	"io"
	"wfm-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minio.Client

type Provider interface {
	MakeBucket(ctx context.Context) error
	Upload(ctx context.Context, objectKey, contentType string, data []byte) error
	Download(ctx context.Context, objectKey string) ([]byte, error)
}

type s3client struct {
	minioClient *minio.Client
}

func NewClient() (Provider, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &s3client{minioClient: minioClient}, nil
}

func (s s3client) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (s s3client) Upload(ctx context.Context, objectKey, contentType string, data []byte) error {
	_, err := s.minioClient.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (s s3client) Download(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := s.minioClient.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}
