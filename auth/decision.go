package auth

import (
	"fmt"
	"scribe/models"
)

// Decision is the outcome of an ownership check. A denied actor is
// softly redirected, never shown an error page.
type Decision struct {
	Allowed  bool
	Redirect string
}

func Allowed() Decision {
	return Decision{Allowed: true}
}

func DeniedRedirect(target string) Decision {
	return Decision{Redirect: target}
}

// CanEditPost allows only the post's author; everyone else is sent
// back to the post's detail page.
func CanEditPost(post *models.Post, actor *models.User) Decision {
	if actor != nil && actor.ID == post.UserID {
		return Allowed()
	}
	return DeniedRedirect(fmt.Sprintf("/posts/%d/", post.ID))
}
