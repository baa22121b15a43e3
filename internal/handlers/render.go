package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/auth"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/config"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	cfg    *config.Config
	auth   service.AuthService
	leaves service.LeaveService
}

func New(cfg *config.Config, authSvc service.AuthService, leaveSvc service.LeaveService) *Handlers {
	return &Handlers{cfg: cfg, auth: authSvc, leaves: leaveSvc}
}

// render wraps c.HTML and hands every template the current identity.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	id := auth.FromSession(sessions.Default(c))
	data["Identity"] = id
	data["CurrentName"] = id.Name
	c.HTML(status, tmpl, data)
}

// fail is the single sink for unexpected errors: log the detail, answer with
// a generic message.
func fail(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

// userMessage strips the validation sentinel prefix so templates show only
// the human-readable part.
func userMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, service.ErrValidation.Error()+": "); ok {
		return rest
	}
	return msg
}

func leaveID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "Invalid leave id")
		return 0, false
	}
	return uint(id), true
}

const flashKey = "flash"

func setFlash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.Set(flashKey, msg)
	_ = sess.Save()
}

// popFlash returns the one-shot message and removes it from the session.
func popFlash(c *gin.Context) string {
	sess := sessions.Default(c)
	msg, _ := sess.Get(flashKey).(string)
	if msg != "" {
		sess.Delete(flashKey)
		_ = sess.Save()
	}
	return msg
}
