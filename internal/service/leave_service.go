package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/store"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NotificationResult reports what the notifier did with a decision email.
type NotificationResult struct {
	Sent       bool
	SkipReason string
}

// Notifier delivers the decision email. Implementations must never panic
// past this boundary; delivery is best-effort and the caller only logs the
// outcome.
type Notifier interface {
	SendDecisionNotification(to, employeeName string, leaveID uint, start, end time.Time, reason string, decision models.LeaveStatus) (NotificationResult, error)
}

type LeaveService interface {
	Create(ctx context.Context, ownerID uint, startDate, endDate, reason string) (uint, error)
	ListForOwner(ctx context.Context, ownerID uint) ([]models.LeaveRequest, error)
	ListAll(ctx context.Context) ([]models.LeaveWithOwner, error)
	GetForEdit(ctx context.Context, id, ownerID uint) (*models.LeaveRequest, error)
	Edit(ctx context.Context, id, ownerID uint, startDate, endDate, reason string) error
	Withdraw(ctx context.Context, id, ownerID uint) error
	Decide(ctx context.Context, id uint, decision models.LeaveStatus) error
}

type leaveService struct {
	leaves   store.LeaveStore
	notifier Notifier
}

func NewLeaveService(leaves store.LeaveStore, notifier Notifier) LeaveService {
	return &leaveService{leaves: leaves, notifier: notifier}
}

// validateLeaveInput enforces the creation/edit policy: well-formed
// YYYY-MM-DD dates, start <= end, start not in the past, non-blank reason.
func validateLeaveInput(startDate, endDate, reason string) (start, end time.Time, why string, err error) {
	start, errStart := ParseISODate(startDate)
	end, errEnd := ParseISODate(endDate)
	why = strings.TrimSpace(reason)

	if errStart != nil || errEnd != nil || why == "" {
		err = fmt.Errorf("%w: start date, end date, and reason are required", ErrValidation)
		return
	}
	if start.After(end) {
		err = fmt.Errorf("%w: start date must be before or equal to end date", ErrValidation)
		return
	}
	if start.Before(Today()) {
		err = fmt.Errorf("%w: start date cannot be in the past", ErrValidation)
		return
	}
	return
}

func (s *leaveService) Create(ctx context.Context, ownerID uint, startDate, endDate, reason string) (uint, error) {
	start, end, why, err := validateLeaveInput(startDate, endDate, reason)
	if err != nil {
		return 0, err
	}

	leave := models.LeaveRequest{
		UserID:    ownerID,
		StartDate: start,
		EndDate:   end,
		Reason:    why,
		Status:    models.StatusPending,
	}
	if err := s.leaves.CreateLeave(ctx, &leave); err != nil {
		return 0, err
	}
	return leave.ID, nil
}

func (s *leaveService) ListForOwner(ctx context.Context, ownerID uint) ([]models.LeaveRequest, error) {
	return s.leaves.ListLeavesByOwner(ctx, ownerID)
}

func (s *leaveService) ListAll(ctx context.Context) ([]models.LeaveWithOwner, error) {
	return s.leaves.ListAllLeavesJoined(ctx)
}

// GetForEdit loads a request for the edit form. Missing id, wrong owner, and
// non-pending status all collapse into ErrNotEditable.
func (s *leaveService) GetForEdit(ctx context.Context, id, ownerID uint) (*models.LeaveRequest, error) {
	leave, err := s.leaves.FindLeaveByIDForOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEditable
		}
		return nil, err
	}
	if leave.Status != models.StatusPending {
		return nil, ErrNotEditable
	}
	return leave, nil
}

func (s *leaveService) Edit(ctx context.Context, id, ownerID uint, startDate, endDate, reason string) error {
	start, end, why, err := validateLeaveInput(startDate, endDate, reason)
	if err != nil {
		return err
	}

	affected, err := s.leaves.UpdateLeaveIfPendingAndOwned(ctx, id, ownerID, start, end, why)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotEditable
	}
	return nil
}

func (s *leaveService) Withdraw(ctx context.Context, id, ownerID uint) error {
	affected, err := s.leaves.DeleteLeaveIfPendingAndOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotWithdrawable
	}
	return nil
}

// Decide moves a pending request to Approved or Rejected. The status write
// is the unit of work; the notification email runs afterwards in its own
// goroutine and can neither block nor fail the decision.
func (s *leaveService) Decide(ctx context.Context, id uint, decision models.LeaveStatus) error {
	if decision != models.StatusApproved && decision != models.StatusRejected {
		return fmt.Errorf("%w: invalid decision %q", ErrValidation, decision)
	}

	affected, err := s.leaves.UpdateLeaveStatusIfPending(ctx, id, decision)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	go s.notifyDecision(id)
	return nil
}

func (s *leaveService) notifyDecision(id uint) {
	leave, err := s.leaves.FindLeaveWithOwnerByID(context.Background(), id)
	if err != nil {
		log.Warn().Err(err).Uint("leave_id", id).Msg("decision notification: load failed")
		return
	}
	if leave.User.Email == "" {
		log.Warn().Uint("leave_id", id).Msg("decision notification skipped: recipient email is empty")
		return
	}

	res, err := s.notifier.SendDecisionNotification(
		leave.User.Email, leave.User.Name, leave.ID,
		leave.StartDate, leave.EndDate, leave.Reason, leave.Status,
	)
	switch {
	case err != nil:
		log.Error().Err(err).Uint("leave_id", id).Msg("decision notification failed")
	case !res.Sent:
		log.Warn().Str("reason", res.SkipReason).Uint("leave_id", id).Msg("decision notification skipped")
	default:
		log.Info().Uint("leave_id", id).Str("to", leave.User.Email).Msg("decision notification sent")
	}
}
