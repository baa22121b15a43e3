package handlers

import (
	"errors"
	"net/http"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/auth"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) ShowSignup(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", gin.H{"error": ""})
}

type signupForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handlers) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "signup.html", gin.H{"error": "Missing required fields"})
		return
	}

	err := h.auth.Signup(c.Request.Context(), form.Name, form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrValidation):
		render(c, http.StatusBadRequest, "signup.html", gin.H{"error": userMessage(err)})
	case errors.Is(err, service.ErrEmailTaken):
		render(c, http.StatusConflict, "signup.html", gin.H{"error": "Email already exists"})
	case err != nil:
		fail(c, err)
	default:
		setFlash(c, "Signup successful. Please login.")
		c.Redirect(http.StatusFound, "/login")
	}
}

func (h *Handlers) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": "", "flash": popFlash(c)})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Missing credentials"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			render(c, http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid email or password"})
			return
		}
		fail(c, err)
		return
	}

	if err := auth.SaveEmployee(sessions.Default(c), user); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handlers) Logout(c *gin.Context) {
	_ = auth.ClearSession(sessions.Default(c))
	c.Redirect(http.StatusFound, "/login")
}
