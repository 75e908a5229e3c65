// Package storage provides the object store holding uploaded PDF documents.
package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
)

const (
	defaultFilesBucket = "invoice-files"

	metaFileName = "file-name"
)

// S3FileStore keeps uploaded PDFs in an S3-compatible bucket (AWS S3, MinIO,
// LocalStack). Objects are keyed by the generated file id; the original
// filename and content type travel as object metadata.
type S3FileStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IFileStore = (*S3FileStore)(nil)

// ConnectS3 creates the S3 client from environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, forces path style)
//   - FILES_BUCKET (default: invoice-files)
func ConnectS3() *S3FileStore {
	region := getenvDefault("AWS_REGION", "us-east-1")

	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create s3 config")
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3FileStore(client, getenvDefault("FILES_BUCKET", defaultFilesBucket))
}

func NewS3FileStore(client *s3.Client, bucket string) *S3FileStore {
	return &S3FileStore{client: client, bucket: bucket}
}

func (s *S3FileStore) Put(ctx context.Context, file entities.StoredFile) (entities.StoredFile, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(file.ID),
		Body:          bytes.NewReader(file.Data),
		ContentType:   aws.String(file.ContentType),
		ContentLength: aws.Int64(file.Size),
		Metadata: map[string]string{
			metaFileName: file.Name,
		},
	})
	if err != nil {
		return entities.StoredFile{}, err
	}

	log.Debug().Str("file_id", file.ID).Int64("size", file.Size).Msg("stored uploaded file")
	return file, nil
}

func (s *S3FileStore) Get(ctx context.Context, id string) (entities.StoredFile, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		if isObjectMissing(err) {
			return entities.StoredFile{}, nil
		}
		return entities.StoredFile{}, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return entities.StoredFile{}, err
	}

	file := entities.StoredFile{
		ID:   id,
		Name: out.Metadata[metaFileName],
		Size: int64(len(data)),
		Data: data,
	}
	if out.ContentType != nil {
		file.ContentType = *out.ContentType
	}
	return file, nil
}

// isObjectMissing matches both the typed NoSuchKey error and the NotFound
// API error some S3-compatible backends return instead.
func isObjectMissing(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	return errors.As(err, &notFound)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
