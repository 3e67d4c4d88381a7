package storage

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"scribe/config"
	"scribe/db"
)

type StorageSpecificAPI interface {
	GetFullPath(path string) string
	EnsureDirExists(dir string) error
	EnsureLocalFile(path string) error
	ReleaseLocalFile(path string)
	UpdateRemoteFile(path, mimeType string) error
	DeleteRemoteFile(path string) error
}

type StorageAPI interface {
	StorageSpecificAPI

	GetSize(path string) int64
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetFreeSpace() uint64
	GetBucket() *Bucket
}

type Storage struct {
	StorageAPI
	specifics StorageAPI
	Bucket    Bucket
}

var cachedStorage []StorageAPI

func Init() {
	db.Instance.AutoMigrate(&Bucket{})

	cachedStorage = []StorageAPI{}
	var buckets []Bucket
	if err := db.Instance.Find(&buckets).Error; err != nil {
		panic(err)
	}
	if len(buckets) == 0 {
		buckets = append(buckets, createDefaultBucket())
	}
	log.Printf("Storage Buckets found: %d\n", len(buckets))
	for _, bucket := range buckets {
		var s StorageAPI
		if bucket.StorageType == StorageTypeFile {
			s = NewDiskStorage(&bucket)
		} else {
			s = NewS3Storage(&bucket)
		}
		log.Printf("Bucket %q: %d MB free\n", bucket.Name, s.GetFreeSpace()/1024/1024)
		cachedStorage = append(cachedStorage, s)
	}
}

// createDefaultBucket makes a first bucket from the environment: S3
// when S3_BUCKET is configured, MEDIA_DIR on disk otherwise.
func createDefaultBucket() Bucket {
	b := Bucket{}
	if config.S3_BUCKET != "" {
		b.Name = config.S3_BUCKET
		b.StorageType = StorageTypeS3
		b.Path = config.S3_PREFIX
		b.AuthDetails = config.S3_AUTH
		b.Region = config.S3_REGION
	} else {
		b.Name = "media"
		b.StorageType = StorageTypeFile
		b.Path = config.MEDIA_DIR
	}
	if err := b.Create(); err != nil {
		panic(err)
	}
	return b
}

func GetDefaultStorage() StorageAPI {
	if len(cachedStorage) == 0 {
		panic("no storage available")
	}
	return cachedStorage[0]
}

func (s *Storage) GetBucket() *Bucket {
	return &s.Bucket
}

//
// NOTE: All the functions below work on a local file
//

func (s *Storage) GetSize(path string) int64 {
	fi, err := os.Stat(s.GetFullPath(path))
	if err != nil {
		return -1
	}
	return fi.Size()
}

func (s *Storage) Save(path string, reader io.Reader) (int64, error) {
	fileName := s.GetFullPath(path)
	if err := s.EnsureDirExists(filepath.Dir(fileName)); err != nil {
		return 0, err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(file, reader)
	file.Close()
	return result, err
}

func (s *Storage) Load(path string, writer io.Writer) (int64, error) {
	fileName := s.GetFullPath(path)
	file, err := os.Open(fileName)
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(writer, file)
	file.Close()
	return result, err
}

func (s *Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	fileName := s.GetFullPath(path)
	http.ServeFile(writer, request, fileName)
}

func (s *Storage) Delete(path string) error {
	if err := s.DeleteRemoteFile(path); err != nil {
		return err
	}
	// The local copy may already be gone for remote buckets
	if err := os.Remove(s.GetFullPath(path)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

//
// Proxy methods
//

func (s *Storage) GetFullPath(path string) string {
	return s.specifics.GetFullPath(path)
}
func (s *Storage) EnsureDirExists(dir string) error {
	return s.specifics.EnsureDirExists(dir)
}
func (s *Storage) EnsureLocalFile(path string) error {
	return s.specifics.EnsureLocalFile(path)
}
func (s *Storage) ReleaseLocalFile(path string) {
	s.specifics.ReleaseLocalFile(path)
}
func (s *Storage) UpdateRemoteFile(path, mimeType string) error {
	return s.specifics.UpdateRemoteFile(path, mimeType)
}
func (s *Storage) DeleteRemoteFile(path string) error {
	return s.specifics.DeleteRemoteFile(path)
}
func (s *Storage) GetFreeSpace() uint64 {
	return s.specifics.GetFreeSpace()
}
