package server

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/config"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/handlers"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/middleware"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, h *handlers.Handlers) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"isoDate": service.FormatDateForInput,
		"badge": func(s models.LeaveStatus) string {
			return "badge-" + strings.ToLower(string(s))
		},
		"isPending": func(s models.LeaveStatus) bool { return s == models.StatusPending },
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("elms_session", store))

	r.GET("/", h.Index)

	// employee auth
	r.GET("/signup", middleware.RedirectIfEmployee(), h.ShowSignup)
	r.POST("/signup", middleware.RedirectIfEmployee(), h.Signup)
	r.GET("/login", middleware.RedirectIfEmployee(), h.ShowLogin)
	r.POST("/login", middleware.RedirectIfEmployee(), h.Login)
	r.POST("/logout", h.Logout)

	// employee leave lifecycle
	emp := r.Group("/")
	emp.Use(middleware.RequireEmployee())
	emp.GET("/dashboard", h.Dashboard)
	emp.GET("/apply-leave", h.ShowApplyLeave)
	emp.POST("/apply-leave", h.ApplyLeave)
	emp.GET("/leave/:id/edit", h.ShowEditLeave)
	emp.POST("/leave/:id/update", h.UpdateLeave)
	emp.POST("/leave/:id/delete", h.DeleteLeave)

	// admin review
	r.GET("/admin/login", h.ShowAdminLogin)
	r.POST("/admin/login", h.AdminLogin)

	adm := r.Group("/")
	adm.Use(middleware.RequireAdmin())
	adm.GET("/admin/dashboard", h.AdminDashboard)
	adm.POST("/leave/:id/approve", h.ApproveLeave)
	adm.POST("/leave/:id/reject", h.RejectLeave)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
