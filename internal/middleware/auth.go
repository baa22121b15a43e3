package middleware

import (
	"net/http"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireEmployee gates employee routes: without an employee session the
// operation never runs and the caller is sent to the login page.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.FromSession(sessions.Default(c))
		if !id.IsEmployee() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates admin routes the same way, against the admin context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.FromSession(sessions.Default(c))
		if !id.IsAdmin() {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfEmployee keeps logged-in employees out of the signup and login
// pages.
func RedirectIfEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.FromSession(sessions.Default(c))
		if id.IsEmployee() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
