package web

import (
	"fmt"
	"log"
	"net/http"

	"scribe/auth"
	"scribe/models"
	"scribe/processing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func postDetailURL(id uint64) string {
	return fmt.Sprintf("/posts/%d/", id)
}

func PostDetail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		notFound(c)
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		log.Printf("Error loading comments for post %d: %v", post.ID, err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	ctx := baseContext(c)
	ctx["Post"] = post
	ctx["Comments"] = comments
	c.HTML(http.StatusOK, "post_detail.tmpl", ctx)
}

func renderPostForm(c *gin.Context, status int, form PostForm, errs FieldErrors, isEdit bool, postID uint64) {
	groups, err := models.GroupList()
	if err != nil {
		log.Printf("Error loading groups: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	ctx := baseContext(c)
	ctx["Form"] = form
	ctx["Errors"] = errs
	ctx["Groups"] = groups
	ctx["IsEdit"] = isEdit
	ctx["PostID"] = postID
	c.HTML(status, "post_form.tmpl", ctx)
}

func PostCreateForm(c *gin.Context, user *models.User) {
	renderPostForm(c, http.StatusOK, PostForm{}, nil, false, 0)
}

// PostCreate persists a new post owned by the current user and sends
// them to their profile. Validation failures re-render the form with
// the submitted values; nothing is stored.
func PostCreate(c *gin.Context, user *models.User) {
	form := PostForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		renderPostForm(c, http.StatusBadRequest, form, FieldErrors{"text": err.Error()}, false, 0)
		return
	}
	input, errs := form.Validate()
	if errs != nil {
		renderPostForm(c, http.StatusOK, form, errs, false, 0)
		return
	}
	post := models.Post{
		UserID:  user.ID,
		Text:    input.Text,
		GroupID: input.GroupID,
	}
	if header, err := c.FormFile("image"); err == nil && header != nil {
		file, err := header.Open()
		if err != nil {
			renderPostForm(c, http.StatusOK, form, FieldErrors{"image": "Could not read the uploaded file"}, false, 0)
			return
		}
		defer file.Close()
		post.Image, post.ThumbPath, err = processing.SaveImage(file, header.Filename)
		if err != nil {
			renderPostForm(c, http.StatusOK, form, FieldErrors{"image": "Not a supported image"}, false, 0)
			return
		}
	}
	if err := post.Create(); err != nil {
		log.Printf("Error creating post: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func loadOwnedPost(c *gin.Context, user *models.User) (models.Post, bool) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return models.Post{}, false
	}
	post, err := models.PostByID(id)
	if err != nil {
		notFound(c)
		return models.Post{}, false
	}
	if decision := auth.CanEditPost(&post, user); !decision.Allowed {
		c.Redirect(http.StatusFound, decision.Redirect)
		return models.Post{}, false
	}
	return post, true
}

func PostEditForm(c *gin.Context, user *models.User) {
	post, ok := loadOwnedPost(c, user)
	if !ok {
		return
	}
	form := PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = fmt.Sprintf("%d", *post.GroupID)
	}
	renderPostForm(c, http.StatusOK, form, nil, true, post.ID)
}

// PostEdit updates text and group, and replaces the stored image when
// a new one is uploaded.
func PostEdit(c *gin.Context, user *models.User) {
	post, ok := loadOwnedPost(c, user)
	if !ok {
		return
	}
	form := PostForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		renderPostForm(c, http.StatusBadRequest, form, FieldErrors{"text": err.Error()}, true, post.ID)
		return
	}
	input, errs := form.Validate()
	if errs != nil {
		renderPostForm(c, http.StatusOK, form, errs, true, post.ID)
		return
	}
	post.Text = input.Text
	post.GroupID = input.GroupID
	if header, err := c.FormFile("image"); err == nil && header != nil {
		file, err := header.Open()
		if err != nil {
			renderPostForm(c, http.StatusOK, form, FieldErrors{"image": "Could not read the uploaded file"}, true, post.ID)
			return
		}
		defer file.Close()
		newImage, newThumb, err := processing.SaveImage(file, header.Filename)
		if err != nil {
			renderPostForm(c, http.StatusOK, form, FieldErrors{"image": "Not a supported image"}, true, post.ID)
			return
		}
		processing.DeleteImage(post.Image, post.ThumbPath)
		post.Image = newImage
		post.ThumbPath = newThumb
	}
	if err := post.SaveEdit(); err != nil {
		log.Printf("Error saving post %d: %v", post.ID, err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	c.Redirect(http.StatusFound, postDetailURL(post.ID))
}

// AddComment attaches a comment to the post and always returns to the
// detail page; invalid submissions are dropped silently.
func AddComment(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		notFound(c)
		return
	}
	form := CommentForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err == nil {
		if text, errs := form.Validate(); errs == nil {
			if _, err := models.CommentCreate(post.ID, user.ID, text); err != nil {
				log.Printf("Error creating comment on post %d: %v", post.ID, err)
			}
		}
	}
	c.Redirect(http.StatusFound, postDetailURL(post.ID))
}
