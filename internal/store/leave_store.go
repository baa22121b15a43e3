package store

import (
	"context"
	"time"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"

	"gorm.io/gorm"
)

// LeaveStore persists leave requests. Every guarded mutation is a single
// conditional statement: ownership and status are checked by the same WHERE
// clause that performs the write, so there is no window between check and
// mutation. Callers read the returned row count to learn whether the guard
// held.
type LeaveStore interface {
	CreateLeave(ctx context.Context, l *models.LeaveRequest) error
	ListLeavesByOwner(ctx context.Context, ownerID uint) ([]models.LeaveRequest, error)
	ListAllLeavesJoined(ctx context.Context) ([]models.LeaveWithOwner, error)
	FindLeaveByIDForOwner(ctx context.Context, id, ownerID uint) (*models.LeaveRequest, error)
	FindLeaveWithOwnerByID(ctx context.Context, id uint) (*models.LeaveRequest, error)
	UpdateLeaveIfPendingAndOwned(ctx context.Context, id, ownerID uint, start, end time.Time, reason string) (int64, error)
	DeleteLeaveIfPendingAndOwned(ctx context.Context, id, ownerID uint) (int64, error)
	UpdateLeaveStatusIfPending(ctx context.Context, id uint, status models.LeaveStatus) (int64, error)
}

type leaveStore struct{ db *gorm.DB }

func NewLeaveStore(db *gorm.DB) LeaveStore { return &leaveStore{db: db} }

func (s *leaveStore) CreateLeave(ctx context.Context, l *models.LeaveRequest) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *leaveStore) ListLeavesByOwner(ctx context.Context, ownerID uint) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&leaves).Error
	return leaves, err
}

func (s *leaveStore) ListAllLeavesJoined(ctx context.Context) ([]models.LeaveWithOwner, error) {
	var rows []models.LeaveWithOwner
	err := s.db.WithContext(ctx).
		Table("leave_requests").
		Select("leave_requests.id, leave_requests.user_id, users.name as owner_name, users.email as owner_email, leave_requests.start_date, leave_requests.end_date, leave_requests.reason, leave_requests.status, leave_requests.created_at, leave_requests.updated_at").
		Joins("join users on users.id = leave_requests.user_id").
		Order("leave_requests.created_at desc").
		Scan(&rows).Error
	return rows, err
}

func (s *leaveStore) FindLeaveByIDForOwner(ctx context.Context, id, ownerID uint) (*models.LeaveRequest, error) {
	var l models.LeaveRequest
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *leaveStore) FindLeaveWithOwnerByID(ctx context.Context, id uint) (*models.LeaveRequest, error) {
	var l models.LeaveRequest
	err := s.db.WithContext(ctx).Preload("User").First(&l, id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *leaveStore) UpdateLeaveIfPendingAndOwned(ctx context.Context, id, ownerID uint, start, end time.Time, reason string) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.LeaveRequest{}).
		Where("id = ? AND user_id = ? AND status = ?", id, ownerID, models.StatusPending).
		Updates(map[string]interface{}{
			"start_date": start,
			"end_date":   end,
			"reason":     reason,
		})
	return res.RowsAffected, res.Error
}

func (s *leaveStore) DeleteLeaveIfPendingAndOwned(ctx context.Context, id, ownerID uint) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status = ?", id, ownerID, models.StatusPending).
		Delete(&models.LeaveRequest{})
	return res.RowsAffected, res.Error
}

func (s *leaveStore) UpdateLeaveStatusIfPending(ctx context.Context, id uint, status models.LeaveStatus) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", status)
	return res.RowsAffected, res.Error
}
