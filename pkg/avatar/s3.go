package avatar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store stores avatars in an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := avatar.NewS3Store(s3.NewFromConfig(cfg), "skilllink-media", "avatars/", 5<<20)
type S3Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	maxSize int64
	baseURL string
}

// NewS3Store creates an S3-backed avatar store.
//
// Parameters:
//   - client: AWS S3 client from aws-sdk-go-v2
//   - bucket: S3 bucket name
//   - prefix: key prefix (e.g. "avatars/")
//   - maxSize: maximum file size in bytes (0 = no limit)
func NewS3Store(client *s3.Client, bucket, prefix string, maxSize int64) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		maxSize: maxSize,
		baseURL: fmt.Sprintf("https://%s.s3.amazonaws.com/", bucket),
	}
}

// WithBaseURL overrides the public URL prefix, for buckets served through a
// CDN or a custom domain.
func (s *S3Store) WithBaseURL(base string) *S3Store {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	s.baseURL = base
	return s
}

// Save uploads the avatar to S3 under a per-user key and returns its public
// URL. Re-uploading for the same user overwrites the object.
func (s *S3Store) Save(userID, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}

	key := s.prefix + userID + ext(contentType)

	// Buffer the body; avatars are small and PutObject wants a seekable reader.
	var buf bytes.Buffer
	if s.maxSize > 0 {
		limited := io.LimitReader(r, s.maxSize+1)
		n, err := io.Copy(&buf, limited)
		if err != nil {
			return "", err
		}
		if n > s.maxSize {
			return "", ErrTooLarge
		}
	} else {
		if _, err := io.Copy(&buf, r); err != nil {
			return "", err
		}
	}

	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"upload-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}

	return s.baseURL + key, nil
}
