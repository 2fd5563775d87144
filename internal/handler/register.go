package handler

import (
	"errors"
	"net/http"
	"net/mail"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/pedroQM1/MrService/internal/credentials"
)

const minPasswordLength = 8

type registerForm struct {
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	ReturnURL       string `form:"returnUrl"`
}

func (h *Handler) RegisterGet(c *gin.Context) {
	c.HTML(http.StatusOK, "register", registerView{
		ReturnURL: c.Query("returnUrl"),
	})
}

func (h *Handler) RegisterPost(c *gin.Context) {
	var form registerForm
	_ = c.ShouldBind(&form)

	if errs := validateRegistration(form); len(errs) > 0 {
		c.HTML(http.StatusOK, "register", registerView{
			ReturnURL: form.ReturnURL,
			Email:     form.Email,
			Errors:    errs,
		})
		return
	}

	if _, err := h.credentials.Register(c.Request.Context(), form.Email, form.Password); err != nil {
		msg := "could not create the account"
		if errors.Is(err, credentials.ErrAlreadyRegistered) {
			msg = "an account with this email already exists"
		}
		c.HTML(http.StatusOK, "register", registerView{
			ReturnURL: form.ReturnURL,
			Email:     form.Email,
			Errors:    []string{msg},
		})
		return
	}

	if form.ReturnURL != "" {
		c.Redirect(http.StatusFound, "/account/login?returnUrl="+url.QueryEscape(form.ReturnURL))
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func validateRegistration(form registerForm) []string {
	var errs []string

	if _, err := mail.ParseAddress(form.Email); err != nil {
		errs = append(errs, "a valid email is required")
	}
	if len(form.Password) < minPasswordLength {
		errs = append(errs, "password must be at least 8 characters")
	}
	if form.Password != form.ConfirmPassword {
		errs = append(errs, "passwords do not match")
	}

	return errs
}
