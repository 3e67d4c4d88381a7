package web

import (
	"net/http"
	"strconv"

	"scribe/auth"

	"github.com/gin-gonic/gin"
)

// baseContext carries what every template expects: the current actor
// (nil when anonymous).
func baseContext(c *gin.Context) gin.H {
	ctx := gin.H{"User": nil}
	session := auth.LoadSession(c)
	if user := session.User(); user.ID != 0 {
		ctx["User"] = user
	}
	return ctx
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{})
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
