package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/config"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/service"

	"github.com/jordan-wright/email"
)

// Mailer sends decision notifications over SMTP. One instance is built at
// startup and injected wherever notifications are needed; there is no
// module-level transport state.
type Mailer struct {
	cfg  config.SMTPConfig
	addr string
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		cfg:  cfg,
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}
}

func (m *Mailer) SendDecisionNotification(to, employeeName string, leaveID uint, start, end time.Time, reason string, decision models.LeaveStatus) (service.NotificationResult, error) {
	if !m.cfg.Configured() {
		return service.NotificationResult{SkipReason: "not_configured"}, nil
	}

	if employeeName == "" {
		employeeName = "there"
	}

	e := email.NewEmail()
	e.From = m.cfg.Sender()
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Leave request #%d %s", leaveID, decision)
	e.Text = []byte(fmt.Sprintf(
		"Hi %s,\n\nYour leave request (#%d) has been %s.\n\nDates: %s to %s\nReason: %s\nStatus: %s\n\nRegards,\nHR/Admin",
		employeeName, leaveID, strings.ToLower(string(decision)),
		service.FormatDateForInput(start), service.FormatDateForInput(end),
		reason, decision,
	))

	var auth smtp.Auth
	if m.cfg.User != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := e.Send(m.addr, auth); err != nil {
		return service.NotificationResult{}, fmt.Errorf("mailer: send decision for leave %d: %w", leaveID, err)
	}
	return service.NotificationResult{Sent: true}, nil
}
