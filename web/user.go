package web

import (
	"net/http"
	"strings"

	"scribe/auth"
	"scribe/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// safeNext keeps the post-login redirect on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func LoginPage(c *gin.Context) {
	ctx := baseContext(c)
	ctx["Form"] = LoginForm{}
	ctx["Errors"] = FieldErrors{}
	ctx["Next"] = c.Query("next")
	c.HTML(http.StatusOK, "login.tmpl", ctx)
}

func Login(c *gin.Context) {
	form := LoginForm{}
	render := func(errs FieldErrors) {
		ctx := baseContext(c)
		ctx["Form"] = form
		ctx["Errors"] = errs
		ctx["Next"] = form.Next
		c.HTML(http.StatusOK, "login.tmpl", ctx)
	}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		render(FieldErrors{"username": err.Error()})
		return
	}
	if errs := form.Validate(); errs != nil {
		render(errs)
		return
	}
	user, success := models.UserLogin(form.Username, form.Password)
	if !success {
		render(FieldErrors{"username": "Wrong username or password"})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, safeNext(form.Next))
}

func SignupPage(c *gin.Context) {
	ctx := baseContext(c)
	ctx["Form"] = SignupForm{}
	ctx["Errors"] = FieldErrors{}
	c.HTML(http.StatusOK, "signup.tmpl", ctx)
}

func Signup(c *gin.Context) {
	form := SignupForm{}
	render := func(errs FieldErrors) {
		ctx := baseContext(c)
		ctx["Form"] = form
		ctx["Errors"] = errs
		c.HTML(http.StatusOK, "signup.tmpl", ctx)
	}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		render(FieldErrors{"username": err.Error()})
		return
	}
	if errs := form.Validate(); errs != nil {
		render(errs)
		return
	}
	user, err := models.UserCreate(form.Username, form.Name, form.Email, form.Password)
	if err != nil {
		render(FieldErrors{"username": "Username is taken"})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}
