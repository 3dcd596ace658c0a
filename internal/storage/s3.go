package storage

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Store is the alternate backend for deployments that keep the collection
// document in an S3 bucket instead of platform storage. Credentials come
// from the default AWS chain.
type S3Store struct {
	session *session.Session
}

func NewS3Store(region string) (*S3Store, error) {
	cfg := aws.NewConfig().WithRegion(region)
	s, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &S3Store{session: s}, nil
}

func (s *S3Store) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	buffer := aws.NewWriteAtBuffer([]byte{})
	object := s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	_, err := s3manager.NewDownloader(s.session).DownloadWithContext(ctx, buffer, &object)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			if aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == "NotFound" {
				return nil, ErrNotFound
			}
		}
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (s *S3Store) Upload(ctx context.Context, bucket, key string, data []byte) error {
	_, err := s3manager.NewUploader(s.session).UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}
