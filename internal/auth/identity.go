// Package auth holds the two session identity contexts and the capability
// checks over them. An Identity is a tagged variant: a request is
// authenticated as an employee, as the admin, or not at all — never both.
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/config"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"

	"github.com/gin-contrib/sessions"
)

type Kind string

const (
	KindNone     Kind = ""
	KindEmployee Kind = "employee"
	KindAdmin    Kind = "admin"
)

// Identity is a denormalized snapshot taken at login; users are immutable
// after signup, so it never goes stale.
type Identity struct {
	Kind   Kind
	UserID uint
	Name   string
	Email  string
}

func (id Identity) IsEmployee() bool { return id.Kind == KindEmployee }
func (id Identity) IsAdmin() bool    { return id.Kind == KindAdmin }

const (
	keyKind   = "kind"
	keyUserID = "user_id"
	keyName   = "user_name"
	keyEmail  = "user_email"
)

// FromSession is the single reader of session identity state.
func FromSession(sess sessions.Session) Identity {
	kindStr, _ := sess.Get(keyKind).(string)
	switch Kind(kindStr) {
	case KindEmployee:
		uid, ok := sess.Get(keyUserID).(uint)
		if !ok || uid == 0 {
			return Identity{}
		}
		name, _ := sess.Get(keyName).(string)
		email, _ := sess.Get(keyEmail).(string)
		return Identity{Kind: KindEmployee, UserID: uid, Name: name, Email: email}
	case KindAdmin:
		email, _ := sess.Get(keyEmail).(string)
		if email == "" {
			return Identity{}
		}
		return Identity{Kind: KindAdmin, Email: email}
	}
	return Identity{}
}

// SaveEmployee replaces whatever identity the session held with an employee
// context.
func SaveEmployee(sess sessions.Session, user *models.User) error {
	sess.Clear()
	sess.Set(keyKind, string(KindEmployee))
	sess.Set(keyUserID, user.ID)
	sess.Set(keyName, user.Name)
	sess.Set(keyEmail, user.Email)
	return sess.Save()
}

// SaveAdmin replaces whatever identity the session held with the admin
// context.
func SaveAdmin(sess sessions.Session, email string) error {
	sess.Clear()
	sess.Set(keyKind, string(KindAdmin))
	sess.Set(keyEmail, email)
	return sess.Save()
}

func ClearSession(sess sessions.Session) error {
	sess.Clear()
	return sess.Save()
}

// CheckAdminCredentials compares submitted credentials against the single
// configured admin pair. Email is case-insensitive; the password comparison
// is constant-time.
func CheckAdminCredentials(cfg *config.Config, email, password string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || email != cfg.AdminEmail {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
}
