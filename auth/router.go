package auth

import (
	"net/http"
	"net/url"
	"scribe/models"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/auth/login/"

// User is authenticated when the handler runs
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds the login check + User pre-loading.
// Anonymous requests are redirected to the login page with the original
// destination in the "next" parameter.
type Router struct {
	Base *gin.Engine
}

func LoginURL(next string) string {
	return LoginPath + "?next=" + url.QueryEscape(next)
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, LoginURL(c.Request.URL.RequestURI()))
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
