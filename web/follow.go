package web

import (
	"errors"
	"log"
	"net/http"

	"scribe/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProfileFollow creates the follow edge and returns to the profile.
// Following yourself or someone you already follow is a silent no-op.
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		log.Printf("Error loading user %q: %v", c.Param("username"), err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	if err := models.FollowUser(user.ID, author.ID); err != nil {
		log.Printf("Error following user %d -> %d: %v", user.ID, author.ID, err)
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		log.Printf("Error loading user %q: %v", c.Param("username"), err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	if err := models.UnfollowUser(user.ID, author.ID); err != nil {
		log.Printf("Error unfollowing user %d -> %d: %v", user.ID, author.ID, err)
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
