package processing

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"scribe/config"
	"scribe/storage"
	"scribe/utils"

	"github.com/google/uuid"
)

var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// SaveImage stores an uploaded post image plus a bounded JPEG
// thumbnail and returns their storage paths. The original file name
// only contributes its extension; stored names are random.
func SaveImage(reader io.Reader, originalName string) (imagePath, thumbPath string, err error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	mimeType, ok := mimeTypes[ext]
	if !ok {
		return "", "", fmt.Errorf("unsupported image type %q", ext)
	}
	buf := bytes.Buffer{}
	if _, err = io.Copy(&buf, reader); err != nil {
		return "", "", err
	}
	original := buf.Bytes()

	thumbBuf := bytes.Buffer{}
	if _, err = utils.CreateThumb(uint(config.THUMB_SIZE), bytes.NewReader(original), &thumbBuf); err != nil {
		return "", "", err
	}

	store := storage.GetDefaultStorage()
	name := uuid.NewString()
	imagePath = "posts/" + name + ext
	thumbPath = "posts/thumb/" + name + ".jpg"

	if _, err = store.Save(imagePath, bytes.NewReader(original)); err != nil {
		return "", "", err
	}
	if err = store.UpdateRemoteFile(imagePath, mimeType); err != nil {
		return "", "", err
	}
	if _, err = store.Save(thumbPath, &thumbBuf); err != nil {
		return "", "", err
	}
	if err = store.UpdateRemoteFile(thumbPath, "image/jpeg"); err != nil {
		return "", "", err
	}
	return imagePath, thumbPath, nil
}

// DeleteImage drops a previously stored image and thumbnail pair.
// Failures are logged, not surfaced: a dangling file never blocks an
// edit.
func DeleteImage(imagePath, thumbPath string) {
	store := storage.GetDefaultStorage()
	for _, path := range []string{imagePath, thumbPath} {
		if path == "" {
			continue
		}
		if err := store.Delete(path); err != nil {
			log.Printf("Error deleting stored image %s: %v", path, err)
		}
	}
}
