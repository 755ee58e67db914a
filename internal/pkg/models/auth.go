package models

// Login roles
const (
	RoleAdmin     = "admin"
	RoleAgency    = "agency"
	RoleConductor = "conductor"
)

// LoginRequest is the role-keyed login payload. AgencyCode is required for
// agency and conductor logins and ignored for admin.
type LoginRequest struct {
	AgencyCode string `json:"agencyCode"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// AuthUser is the identity encoded into the session token and echoed back
// to the dashboard.
type AuthUser struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	AgencyID   string `json:"agencyId,omitempty"`
	AgencyCode string `json:"agencyCode,omitempty"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expiresAt"`
	User      AuthUser `json:"user"`
}

// ValidateResponse is returned by the token validation endpoint. It never
// reports an error; an invalid token is just authenticated=false.
type ValidateResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *AuthUser `json:"user,omitempty"`
}
