package web

import (
	"strconv"
	"strings"

	"scribe/db"
	"scribe/models"
)

// FieldErrors maps form field name to a message shown inline.
type FieldErrors map[string]string

type PostForm struct {
	Text  string `form:"text"`
	Group string `form:"group"`
}

type PostInput struct {
	Text    string
	GroupID *uint64
}

// Validate returns the cleaned input or the field errors, never both.
func (f *PostForm) Validate() (PostInput, FieldErrors) {
	errs := FieldErrors{}
	input := PostInput{Text: strings.TrimSpace(f.Text)}
	if input.Text == "" {
		errs["text"] = "Text is required"
	}
	if f.Group != "" {
		groupID, err := strconv.ParseUint(f.Group, 10, 64)
		if err != nil {
			errs["group"] = "Unknown group"
		} else {
			var group models.Group
			if db.Instance.First(&group, groupID).Error != nil {
				errs["group"] = "Unknown group"
			} else {
				input.GroupID = &group.ID
			}
		}
	}
	if len(errs) > 0 {
		return PostInput{}, errs
	}
	return input, nil
}

type CommentForm struct {
	Text string `form:"text"`
}

func (f *CommentForm) Validate() (string, FieldErrors) {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return "", FieldErrors{"text": "Text is required"}
	}
	return text, nil
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func (f *LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "Username is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SignupForm struct {
	Username string `form:"username"`
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f *SignupForm) Validate() FieldErrors {
	errs := FieldErrors{}
	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" {
		errs["username"] = "Username is required"
	}
	if len(f.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
