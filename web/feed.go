package web

import (
	"errors"
	"log"
	"net/http"

	"scribe/auth"
	"scribe/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Index(c *gin.Context) {
	feedPage, err := models.Paginate(models.PostFeed(), pageParam(c))
	if err != nil {
		log.Printf("Error loading index feed: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	ctx := baseContext(c)
	ctx["Page"] = feedPage
	c.HTML(http.StatusOK, "index.tmpl", ctx)
}

func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		log.Printf("Error loading group %q: %v", c.Param("slug"), err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	feedPage, err := models.Paginate(models.FeedByGroup(group.ID), pageParam(c))
	if err != nil {
		log.Printf("Error loading group feed: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	ctx := baseContext(c)
	ctx["Group"] = group
	ctx["Page"] = feedPage
	c.HTML(http.StatusOK, "group_list.tmpl", ctx)
}

func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		log.Printf("Error loading profile %q: %v", c.Param("username"), err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	feedPage, err := models.Paginate(models.FeedByAuthor(author.ID), pageParam(c))
	if err != nil {
		log.Printf("Error loading profile feed: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	following := false
	if viewerID := auth.LoadSession(c).UserID(); viewerID != 0 {
		following = models.IsFollowing(viewerID, author.ID)
	}
	ctx := baseContext(c)
	ctx["Author"] = author
	ctx["Following"] = following
	ctx["Page"] = feedPage
	c.HTML(http.StatusOK, "profile.tmpl", ctx)
}

// FollowIndex shows posts from the authors the current user follows.
func FollowIndex(c *gin.Context, user *models.User) {
	feedPage, err := models.Paginate(models.FeedByFollowed(user.ID), pageParam(c))
	if err != nil {
		log.Printf("Error loading follow feed: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	ctx := baseContext(c)
	ctx["Page"] = feedPage
	c.HTML(http.StatusOK, "follow.tmpl", ctx)
}
