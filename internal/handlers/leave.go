package handlers

import (
	"errors"
	"net/http"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/auth"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func currentEmployee(c *gin.Context) auth.Identity {
	return auth.FromSession(sessions.Default(c))
}

func (h *Handlers) Dashboard(c *gin.Context) {
	id := currentEmployee(c)

	leaves, err := h.leaves.ListForOwner(c.Request.Context(), id.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"leaves": leaves,
		"flash":  popFlash(c),
	})
}

func (h *Handlers) ShowApplyLeave(c *gin.Context) {
	render(c, http.StatusOK, "apply_leave.html", gin.H{"error": ""})
}

type leaveForm struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Reason    string `form:"reason"`
}

func (h *Handlers) ApplyLeave(c *gin.Context) {
	var form leaveForm
	_ = c.ShouldBind(&form)

	id := currentEmployee(c)
	_, err := h.leaves.Create(c.Request.Context(), id.UserID, form.StartDate, form.EndDate, form.Reason)
	switch {
	case errors.Is(err, service.ErrValidation):
		render(c, http.StatusBadRequest, "apply_leave.html", gin.H{"error": userMessage(err)})
	case err != nil:
		fail(c, err)
	default:
		setFlash(c, "Leave request submitted.")
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

func (h *Handlers) ShowEditLeave(c *gin.Context) {
	id, ok := leaveID(c)
	if !ok {
		return
	}

	emp := currentEmployee(c)
	leave, err := h.leaves.GetForEdit(c.Request.Context(), id, emp.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotEditable) {
			setFlash(c, "Only pending leave requests can be edited.")
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		fail(c, err)
		return
	}

	render(c, http.StatusOK, "edit_leave.html", gin.H{
		"error":     "",
		"ID":        leave.ID,
		"StartDate": service.FormatDateForInput(leave.StartDate),
		"EndDate":   service.FormatDateForInput(leave.EndDate),
		"Reason":    leave.Reason,
	})
}

func (h *Handlers) UpdateLeave(c *gin.Context) {
	id, ok := leaveID(c)
	if !ok {
		return
	}

	var form leaveForm
	_ = c.ShouldBind(&form)

	emp := currentEmployee(c)
	err := h.leaves.Edit(c.Request.Context(), id, emp.UserID, form.StartDate, form.EndDate, form.Reason)
	switch {
	case errors.Is(err, service.ErrValidation):
		render(c, http.StatusBadRequest, "edit_leave.html", gin.H{
			"error":     userMessage(err),
			"ID":        id,
			"StartDate": form.StartDate,
			"EndDate":   form.EndDate,
			"Reason":    form.Reason,
		})
	case errors.Is(err, service.ErrNotEditable):
		setFlash(c, "Unable to update. Only pending leave requests can be edited.")
		c.Redirect(http.StatusFound, "/dashboard")
	case err != nil:
		fail(c, err)
	default:
		setFlash(c, "Leave request updated.")
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

func (h *Handlers) DeleteLeave(c *gin.Context) {
	id, ok := leaveID(c)
	if !ok {
		return
	}

	emp := currentEmployee(c)
	err := h.leaves.Withdraw(c.Request.Context(), id, emp.UserID)
	switch {
	case errors.Is(err, service.ErrNotWithdrawable):
		setFlash(c, "Unable to delete. Only pending leave requests can be deleted.")
		c.Redirect(http.StatusFound, "/dashboard")
	case err != nil:
		fail(c, err)
	default:
		setFlash(c, "Leave request deleted.")
		c.Redirect(http.StatusFound, "/dashboard")
	}
}
