package models

import "time"

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "Pending"
	StatusApproved LeaveStatus = "Approved"
	StatusRejected LeaveStatus = "Rejected"
)

// LeaveRequest has no DeletedAt column: withdrawal removes the row outright,
// and decided requests are never deleted at all.
type LeaveRequest struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"index;not null"`
	User      User
	StartDate time.Time   `gorm:"type:date;not null"`
	EndDate   time.Time   `gorm:"type:date;not null"`
	Reason    string      `gorm:"type:text;not null"`
	Status    LeaveStatus `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveWithOwner is the admin-review row: a request joined with the
// identity of its owning user.
type LeaveWithOwner struct {
	ID         uint
	UserID     uint
	OwnerName  string
	OwnerEmail string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
