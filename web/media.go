package web

import (
	"log"
	"strings"

	"scribe/storage"

	"github.com/gin-gonic/gin"
)

// Media serves stored post images through the storage layer, pulling
// S3 objects to local scratch space when needed.
func Media(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		notFound(c)
		return
	}
	store := storage.GetDefaultStorage()
	if err := store.EnsureLocalFile(path); err != nil {
		log.Printf("Error fetching media %s: %v", path, err)
		notFound(c)
		return
	}
	store.Serve(path, c.Request, c.Writer)
}
