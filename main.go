package main

import (
	"log"
	"strings"
	"time"

	"scribe/auth"
	"scribe/cache"
	"scribe/config"
	"scribe/db"
	"scribe/models"
	"scribe/storage"
	"scribe/utils"
	"scribe/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}
	db.Init()
	models.Init()
	storage.Init()
	if config.DEFAULT_GROUPS != "" {
		models.SeedGroups(config.DEFAULT_GROUPS)
	}

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	// The post index is the only full-page-cached view
	pageCache := cache.New(time.Duration(config.INDEX_CACHE_SECONDS) * time.Second)

	// Public views
	router.GET("/", pageCache.Middleware(), web.Index)
	router.GET("/group/:slug/", web.GroupPosts)
	router.GET("/profile/:username/", web.Profile)
	router.GET("/posts/:id/", web.PostDetail)
	router.GET("/media/*path", (&utils.CacheRouter{CacheTime: 86400}).Handler(), web.Media)
	router.GET("/robots.txt", web.DisallowRobots)

	// Session handling
	router.GET(auth.LoginPath, web.LoginPage)
	router.POST(auth.LoginPath, web.Login)
	router.GET("/auth/signup/", web.SignupPage)
	router.POST("/auth/signup/", web.Signup)
	router.POST("/auth/logout/", web.Logout)

	// Views that require a logged-in user
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", web.PostCreateForm)
	authRouter.POST("/create/", web.PostCreate)
	authRouter.GET("/posts/:id/edit/", web.PostEditForm)
	authRouter.POST("/posts/:id/edit/", web.PostEdit)
	authRouter.POST("/posts/:id/comment/", web.AddComment)
	authRouter.GET("/follow/", web.FollowIndex)
	authRouter.GET("/profile/:username/follow/", web.ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", web.ProfileUnfollow)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
