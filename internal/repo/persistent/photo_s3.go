package persistent

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/s3client"
)

type PhotoBlobRepo struct {
	*s3client.S3Client
	bucket string
	urlTTL time.Duration
}

func NewPhotoBlobRepo(s3c *s3client.S3Client, bucket string, urlTTL time.Duration) *PhotoBlobRepo {
	return &PhotoBlobRepo{s3c, bucket, urlTTL}
}

func (r *PhotoBlobRepo) Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          data,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("PhotoBlobRepo - Upload - r.Client.PutObject: %w", err)
	}

	return nil
}

// ResolveURL returns a presigned GET URL. The URL expires per store
// policy, callers must not persist it beyond one read pass.
func (r *PhotoBlobRepo) ResolveURL(ctx context.Context, key string) (string, error) {
	req, err := r.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.urlTTL))
	if err != nil {
		return "", fmt.Errorf("PhotoBlobRepo - ResolveURL - r.Presigner.PresignGetObject: %w", err)
	}

	return req.URL, nil
}

func (r *PhotoBlobRepo) Delete(ctx context.Context, key string) error {
	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("PhotoBlobRepo - Delete - r.Client.DeleteObject: %w", err)
	}

	return nil
}
