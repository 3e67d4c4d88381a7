package storage

import (
	"os"
	"strings"

	"scribe/db"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

type Bucket struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Name        string `gorm:"type:varchar(200)"`
	StorageType StorageType
	Path        string // Path on a drive or a prefix in a S3 bucket
	AuthDetails string // Authentication details. In case of S3 bucket - "key:secret"
	Region      string `gorm:"type:varchar(50)"`
}

func (b *Bucket) Create() error {
	err := db.Instance.Create(b).Error
	if err != nil {
		return err
	}
	if b.StorageType == StorageTypeFile {
		if err = os.MkdirAll(b.Path, 0777); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bucket) CreateSVC() *s3.S3 {
	cfg := aws.NewConfig().WithRegion(b.Region)
	if creds := strings.SplitN(b.AuthDetails, ":", 2); len(creds) == 2 {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(creds[0], creds[1], ""))
	}
	return s3.New(session.Must(session.NewSession()), cfg)
}

func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}
