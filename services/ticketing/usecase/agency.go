package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// agencyCode derives the tenant code: the supplied code uppercased, or the
// first three letters of the name when none was given.
func agencyCode(code, name string) string {
	if code != "" {
		return strings.ToUpper(code)
	}
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name)
}

// Register creates a pending agency from the public registration form. The
// full form is required here; admin creation uses CreateByAdmin instead.
func (u *AgencyUC) Register(ctx context.Context, agency *models.Agency) (*models.Agency, error) {
	if agency.Name == "" || agency.Username == "" || agency.Password == "" ||
		agency.AdminEmail == "" || agency.AdminPhone == "" || agency.LegalStatus == "" ||
		agency.YearOfEstablishment == 0 || agency.HeadOfficeAddress == "" ||
		agency.City == "" || agency.State == "" || agency.Pincode == "" ||
		agency.AdminName == "" || agency.AdminDesignation == "" || agency.TotalBuses == 0 ||
		len(agency.PrimaryBusTypes) == 0 || agency.KeyOperatingRoutes == "" ||
		agency.CurrentTicketingMethod == "" {
		return nil, apperr.Validation("missing required fields")
	}

	agency.Code = agencyCode(agency.Code, agency.Name)
	agency.Email = agency.AdminEmail
	agency.Phone = agency.AdminPhone
	agency.Status = models.AgencyStatusPending

	return u.create(ctx, agency)
}

// CreateByAdmin creates an approved agency directly with the minimal
// field set.
func (u *AgencyUC) CreateByAdmin(ctx context.Context, agency *models.Agency) (*models.Agency, error) {
	if agency.Name == "" || agency.Username == "" || agency.Password == "" {
		return nil, apperr.Validation("missing required fields: name, username, password")
	}

	agency.Code = agencyCode(agency.Code, agency.Name)
	if agency.Email == "" {
		agency.Email = agency.AdminEmail
	}
	if agency.Phone == "" {
		agency.Phone = agency.AdminPhone
	}
	agency.Status = models.AgencyStatusApproved

	return u.create(ctx, agency)
}

func (u *AgencyUC) create(ctx context.Context, agency *models.Agency) (*models.Agency, error) {
	hashed, err := hashPassword(agency.Password)
	if err != nil {
		return nil, apperr.Internal("failed to create agency", err)
	}
	agency.Password = hashed

	if err := u.agencyRepo.Create(ctx, agency); err != nil {
		return nil, apperr.Internal("failed to create agency", err)
	}

	logger.Info("Agency created",
		logger.String("agency_id", agency.ID.String()),
		logger.String("code", agency.Code),
		logger.String("status", agency.Status))

	agency.Password = ""
	return agency, nil
}

// List returns every agency for the admin dashboard.
func (u *AgencyUC) List(ctx context.Context) ([]models.Agency, error) {
	return u.agencyRepo.List(ctx)
}

// ListPending returns agencies awaiting review.
func (u *AgencyUC) ListPending(ctx context.Context) ([]models.Agency, error) {
	return u.agencyRepo.ListByStatus(ctx, models.AgencyStatusPending)
}

// Approve marks the agency approved and records the reviewer. There is no
// guard against re-reviewing; approval rewrites the same fields.
func (u *AgencyUC) Approve(ctx context.Context, id uuid.UUID, adminID string) (*models.Agency, error) {
	if adminID == "" {
		return nil, apperr.Validation("admin id is required")
	}

	now := u.now()
	agency, err := u.agencyRepo.SetReview(ctx, id, models.AgencyStatusApproved, adminID, "", now)
	if err != nil {
		return nil, err
	}

	u.publishReview(ctx, agency, "")
	return agency, nil
}

// Reject marks the agency rejected with a reason. Rejection is terminal.
func (u *AgencyUC) Reject(ctx context.Context, id uuid.UUID, adminID, reason string) (*models.Agency, error) {
	if adminID == "" {
		return nil, apperr.Validation("admin id is required")
	}
	if reason == "" {
		return nil, apperr.Validation("rejection reason is required")
	}

	now := u.now()
	agency, err := u.agencyRepo.SetReview(ctx, id, models.AgencyStatusRejected, adminID, reason, now)
	if err != nil {
		return nil, err
	}

	u.publishReview(ctx, agency, reason)
	return agency, nil
}

func (u *AgencyUC) publishReview(ctx context.Context, agency *models.Agency, reason string) {
	event := models.AgencyReviewedEvent{
		AgencyID:   agency.ID,
		Status:     agency.Status,
		ReviewedBy: agency.ReviewedBy,
		Reason:     reason,
		ReviewedAt: u.now(),
	}
	if err := u.gw.PublishAgencyReviewed(ctx, event); err != nil {
		logger.Warn("Failed to publish agency reviewed event",
			logger.String("agency_id", agency.ID.String()),
			logger.Err(err))
	}
}

// Update applies a partial update; a new password is hashed before it
// reaches storage.
func (u *AgencyUC) Update(ctx context.Context, id uuid.UUID, updates *models.AgencyUpdate) (*models.Agency, error) {
	if updates.Password != nil && *updates.Password != "" {
		hashed, err := hashPassword(*updates.Password)
		if err != nil {
			return nil, apperr.Internal("failed to update agency", err)
		}
		updates.Password = &hashed
	}

	agency, err := u.agencyRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	agency.Password = ""
	return agency, nil
}

// Delete removes the agency and cascades to every record referencing it.
func (u *AgencyUC) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.agencyRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Agency deleted with cascade", logger.String("agency_id", id.String()))
	return nil
}
