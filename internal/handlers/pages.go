package handlers

import (
	"net/http"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Index routes each identity to its home page.
func (h *Handlers) Index(c *gin.Context) {
	id := auth.FromSession(sessions.Default(c))
	switch {
	case id.IsEmployee():
		c.Redirect(http.StatusFound, "/dashboard")
	case id.IsAdmin():
		c.Redirect(http.StatusFound, "/admin/dashboard")
	default:
		c.Redirect(http.StatusFound, "/login")
	}
}
