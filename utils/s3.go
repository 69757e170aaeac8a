package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageStore saves uploaded meal photos. With a bucket configured it writes
// to S3 and returns the object URL; without one it writes to the local temp
// directory and returns the file path. Either form is accepted by the image
// recognizer as an image reference.
type ImageStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewImageStore(region, bucket string) (*ImageStore, error) {
	st := &ImageStore{bucket: bucket, region: region}
	if bucket == "" {
		return st, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	st.client = s3.NewFromConfig(cfg)
	return st, nil
}

func (st *ImageStore) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	if st.client == nil {
		path := filepath.Join(os.TempDir(), filename)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return "", fmt.Errorf("failed to write upload: %w", err)
		}
		return path, nil
	}

	key := fmt.Sprintf("meal-uploads/%d-%s", time.Now().UnixNano(), filename)
	_, err := st.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(st.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", st.bucket, st.region, key), nil
}
