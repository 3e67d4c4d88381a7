package cache

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Middleware replays a cached copy of the page when one is fresh, and
// captures successful GET responses otherwise. Keyed by path+query so
// each feed page caches separately.
func (pc *PageCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.RequestURI()
		if body, contentType, ok := pc.Get(key); ok {
			c.Data(http.StatusOK, contentType, body)
			c.Abort()
			return
		}
		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()
		if w.Status() == http.StatusOK {
			pc.Set(key, w.buf.Bytes(), w.Header().Get("Content-Type"), pc.TTL)
		}
	}
}
