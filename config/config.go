package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS         = ""          // e.g. "example.com,example2.com"
	MYSQL_DSN           = ""          // MySQL will be used if this is set
	SQLITE_FILE         = "scribe.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS        = "0.0.0.0:8080"
	MEDIA_DIR           = "./media" // Default disk bucket for post images
	TMP_DIR             = "/tmp"    // Local scratch space when the media bucket is on S3
	S3_BUCKET           = ""        // S3 will be used for post images if this is set
	S3_PREFIX           = "posts"
	S3_AUTH             = "" // "key:secret"
	S3_REGION           = "us-east-1"
	DEFAULT_GROUPS      = "" // "slug:Title,slug:Title" pairs seeded at startup
	SESSION_KEY         = "change me in production"
	DEBUG_MODE          = true
	INDEX_CACHE_SECONDS = 20 // Full-page cache TTL for the post index
	POSTS_PER_PAGE      = 10
	THUMB_SIZE          = 1280
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_PREFIX", &S3_PREFIX)
	readEnvString("S3_AUTH", &S3_AUTH)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("DEFAULT_GROUPS", &DEFAULT_GROUPS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("INDEX_CACHE_SECONDS", &INDEX_CACHE_SECONDS)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
