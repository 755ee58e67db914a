package usecase

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/jwt"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates against the store selected by the role field. Every
// mismatch, wrong role, unknown user or bad password alike, comes back as
// the same unauthorized error so callers cannot probe which part failed.
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return nil, apperr.Validation("missing required fields: username, password, role")
	}

	var (
		user models.AuthUser
		err  error
	)
	switch req.Role {
	case models.RoleAdmin:
		user, err = u.loginAdmin(req)
	case models.RoleAgency:
		user, err = u.loginAgency(ctx, req)
	case models.RoleConductor:
		user, err = u.loginConductor(ctx, req)
	default:
		return nil, apperr.Validation("unknown role")
	}
	if err != nil {
		logger.Warn("Login failed",
			logger.String("role", req.Role),
			logger.String("username", req.Username))
		return nil, err
	}

	token, expiresAt, err := jwt.GenerateToken(user, u.cfg)
	if err != nil {
		return nil, apperr.Internal("failed to generate token", err)
	}

	logger.Info("Login succeeded",
		logger.String("role", user.Role),
		logger.String("user_id", user.ID))

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (u *AuthUC) loginAdmin(req *models.LoginRequest) (models.AuthUser, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(u.cfg.Admin.Username))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(u.cfg.Admin.Password))
	if userOK&passOK != 1 {
		return models.AuthUser{}, errInvalidCredentials()
	}
	return models.AuthUser{
		ID:       models.RoleAdmin,
		Role:     models.RoleAdmin,
		Username: u.cfg.Admin.Username,
		Name:     u.cfg.Admin.Name,
	}, nil
}

func (u *AuthUC) loginAgency(ctx context.Context, req *models.LoginRequest) (models.AuthUser, error) {
	if req.AgencyCode == "" {
		return models.AuthUser{}, apperr.Validation("agency code is required")
	}

	agency, err := u.agencyRepo.GetByCodeAndUsername(ctx, strings.ToUpper(req.AgencyCode), req.Username)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return models.AuthUser{}, errInvalidCredentials()
		}
		return models.AuthUser{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(agency.Password), []byte(req.Password)) != nil {
		return models.AuthUser{}, errInvalidCredentials()
	}
	if agency.Status != models.AgencyStatusApproved {
		return models.AuthUser{}, apperr.Forbidden("agency is not approved")
	}

	return models.AuthUser{
		ID:         agency.ID.String(),
		Role:       models.RoleAgency,
		AgencyID:   agency.ID.String(),
		AgencyCode: agency.Code,
		Username:   agency.Username,
		Name:       agency.Name,
		Email:      agency.Email,
	}, nil
}

func (u *AuthUC) loginConductor(ctx context.Context, req *models.LoginRequest) (models.AuthUser, error) {
	if req.AgencyCode == "" {
		return models.AuthUser{}, apperr.Validation("agency code is required")
	}

	conductor, err := u.conductorRepo.GetByAgencyCodeAndUsername(ctx, strings.ToUpper(req.AgencyCode), req.Username)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return models.AuthUser{}, errInvalidCredentials()
		}
		return models.AuthUser{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(conductor.Password), []byte(req.Password)) != nil {
		return models.AuthUser{}, errInvalidCredentials()
	}

	return models.AuthUser{
		ID:         conductor.ID.String(),
		Role:       models.RoleConductor,
		AgencyID:   conductor.AgencyID.String(),
		AgencyCode: conductor.AgencyCode,
		Username:   conductor.Username,
		Name:       conductor.Name,
		Email:      conductor.Email,
	}, nil
}

func errInvalidCredentials() error {
	return apperr.Unauthorized("invalid credentials")
}

// Validate checks a session token. It never returns an error; an invalid
// or expired token is just authenticated=false.
func (u *AuthUC) Validate(tokenString string) *models.ValidateResponse {
	claims, err := jwt.ValidateToken(tokenString, u.cfg.JWT.Secret)
	if err != nil {
		return &models.ValidateResponse{Authenticated: false}
	}

	user := jwt.UserFromClaims(claims)
	return &models.ValidateResponse{
		Authenticated: true,
		User:          &user,
	}
}
