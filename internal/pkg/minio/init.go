package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"Milestone/internal/api/config"
)

var (
	// Client 全局 MinIO 客户端实例，未启用归档时保持 nil
	Client *minio.Client
	// BucketName 报表归档桶
	BucketName string
)

// Init 初始化 MinIO 客户端并确保归档桶存在。
// 归档是可选能力，配置未启用时直接返回。
func Init() error {
	cfg := config.Cfg.MinIO
	if !cfg.Enabled {
		return nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create report bucket: %w", err)
		}
	}

	Client = client
	BucketName = cfg.Bucket
	return nil
}

// Enabled 归档能力是否可用
func Enabled() bool {
	return Client != nil
}
