package snapshot

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader copies exported snapshots to an S3 compatible bucket.
type Uploader struct {
	client     *minio.Client
	bucketName string
}

func NewUploader(ctx context.Context, cfg wifiscanner.ObjectStoreConfig) (*Uploader, error) {
	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create object store client: %w", err)
	}

	exists, err := cli.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("cannot check bucket %q: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("cannot create bucket %q: %w", cfg.BucketName, err)
		}
	}

	return &Uploader{client: cli, bucketName: cfg.BucketName}, nil
}

// Upload puts the snapshot at localPath into the bucket and returns its URL.
func (u *Uploader) Upload(ctx context.Context, localPath string) (string, error) {
	key := ObjectKey(localPath)
	_, err := u.client.FPutObject(ctx, u.bucketName, key, localPath, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("cannot upload %q: %w", localPath, err)
	}

	return fmt.Sprintf("%s/%s/%s", u.client.EndpointURL().String(), u.bucketName, key), nil
}

// ObjectKey mirrors the local layout: WifiScanner/<file>.
func ObjectKey(localPath string) string {
	return path.Join(DirName, filepath.Base(localPath))
}
