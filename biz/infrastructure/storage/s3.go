package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/config"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/google/wire"
)

// ObjectStorage 文件字节的存储
type ObjectStorage interface {
	Put(ctx context.Context, filename, contentType string, content []byte) (string, error)
	Get(ctx context.Context, storagePath string) ([]byte, error)
	Delete(ctx context.Context, storagePath string) error
}

type S3Storage struct {
	client *s3.S3
	bucket string
}

var S3Set = wire.NewSet(
	NewS3Storage,
	wire.Bind(new(ObjectStorage), new(*S3Storage)),
)

func NewS3Storage(config *config.Config) *S3Storage {
	cfg := &aws.Config{
		Region:      aws.String(config.S3.Region),
		Credentials: credentials.NewStaticCredentials(config.S3.AccessKey, config.S3.SecretKey, ""),
	}
	if config.S3.Endpoint != "" {
		cfg.Endpoint = aws.String(config.S3.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess := session.Must(session.NewSession(cfg))
	log.Info("NewS3Storage bucket: %s", config.S3.Bucket)
	return &S3Storage{
		client: s3.New(sess),
		bucket: config.S3.Bucket,
	}
}

// Put 以随机key存储文件内容, 返回存储路径
func (s *S3Storage) Put(ctx context.Context, filename, contentType string, content []byte) (string, error) {
	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), path.Ext(filename))
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3Storage) Get(ctx context.Context, storagePath string) ([]byte, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storagePath),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (s *S3Storage) Delete(ctx context.Context, storagePath string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storagePath),
	})
	return err
}
