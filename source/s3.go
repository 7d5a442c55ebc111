// SPDX-License-Identifier: MIT
package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultRegion = "us-east-1"

// S3Config holds the client settings for s3:// locations. Any S3-compatible
// endpoint works (AWS, MinIO, Ceph).
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Fetcher returns the body of bucket/key.
type Fetcher func(ctx context.Context, bucket, key string) (io.ReadCloser, error)

// NewS3Fetcher builds a minio-backed Fetcher. Empty credentials select
// anonymous access. No request is made until the Fetcher is called.
func NewS3Fetcher(cfg S3Config) (Fetcher, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("NewS3Fetcher: endpoint is required: %w", ErrS3Config)
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if (access == "") != (secret == "") {
		return nil, fmt.Errorf("NewS3Fetcher: access key and secret key go together: %w", ErrS3Config)
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = defaultRegion
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("NewS3Fetcher: %w: %w", ErrS3Config, err)
	}

	return func(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
		obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return nil, err
		}
		// GetObject is lazy; Stat surfaces a missing key before the first row.
		if _, err = obj.Stat(); err != nil {
			_ = obj.Close()
			errResp := minio.ToErrorResponse(err)
			if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
				return nil, fmt.Errorf("%s/%s: %w", bucket, key, ErrNotFound)
			}
			return nil, err
		}

		return obj, nil
	}, nil
}
