package web

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"scribe/auth"
	"scribe/cache"
	"scribe/db"
	"scribe/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the same routes as main.go on top of a fresh
// in-memory database and an in-memory session store.
func newTestRouter(t *testing.T) (*gin.Engine, *cache.PageCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:web_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	db.Instance = gdb
	models.Init()
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	router := gin.New()
	store := memstore.NewStore([]byte("test session key"))
	router.Use(sessions.Sessions("token", store))
	router.LoadHTMLGlob("../templates/*.tmpl")

	pageCache := cache.New(time.Minute)
	router.GET("/", pageCache.Middleware(), Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	router.GET(auth.LoginPath, LoginPage)
	router.POST(auth.LoginPath, Login)
	router.GET("/auth/signup/", SignupPage)
	router.POST("/auth/signup/", Signup)
	router.POST("/auth/logout/", Logout)

	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", PostCreateForm)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEditForm)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/comment/", AddComment)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.GET("/profile/:username/follow/", ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", ProfileUnfollow)

	return router, pageCache
}

func mustCreateUser(t *testing.T, username string) models.User {
	t.Helper()
	u, err := models.UserCreate(username, username, username+"@example.com", "password123")
	if err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return u
}

// loginAs returns the session cookies for an already-created user.
func loginAs(t *testing.T, router *gin.Engine, username string) []*http.Cookie {
	t.Helper()
	form := url.Values{"username": {username}, "password": {"password123"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, auth.LoginPath, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func doGet(router *gin.Engine, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

func doPostForm(router *gin.Engine, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}
