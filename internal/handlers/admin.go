package handlers

import (
	"errors"
	"net/http"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/auth"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) ShowAdminLogin(c *gin.Context) {
	if auth.FromSession(sessions.Default(c)).IsAdmin() {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	render(c, http.StatusOK, "admin_login.html", gin.H{"error": ""})
}

func (h *Handlers) AdminLogin(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		render(c, http.StatusBadRequest, "admin_login.html", gin.H{"error": "Missing credentials"})
		return
	}

	if !auth.CheckAdminCredentials(h.cfg, form.Email, form.Password) {
		render(c, http.StatusUnauthorized, "admin_login.html", gin.H{"error": "Invalid admin credentials"})
		return
	}

	if err := auth.SaveAdmin(sessions.Default(c), service.NormalizeEmail(form.Email)); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handlers) AdminDashboard(c *gin.Context) {
	rows, err := h.leaves.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "admin_dashboard.html", gin.H{"rows": rows})
}

func (h *Handlers) ApproveLeave(c *gin.Context) {
	h.decide(c, models.StatusApproved)
}

func (h *Handlers) RejectLeave(c *gin.Context) {
	h.decide(c, models.StatusRejected)
}

func (h *Handlers) decide(c *gin.Context, decision models.LeaveStatus) {
	id, ok := leaveID(c)
	if !ok {
		return
	}

	err := h.leaves.Decide(c.Request.Context(), id, decision)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.String(http.StatusNotFound, "Leave request not found or already decided")
	case err != nil:
		fail(c, err)
	default:
		c.Redirect(http.StatusFound, "/admin/dashboard")
	}
}
