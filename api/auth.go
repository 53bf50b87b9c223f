package api

import (
	"context"
	"net/http"
)

// Principal is the authenticated user's record as returned by /signin.
type Principal struct {
	UserID     int64      `json:"user_id"`
	UserName   string     `json:"user_name"`
	UserEmail  string     `json:"user_email"`
	UserMobile string     `json:"user_mobile"`
	Gender     string     `json:"gender"`
	UpdatedBy  int64      `json:"updated_by"`
	IsActive   bool       `json:"is_active"`
	Properties Properties `json:"pi_user_prop"`
	Roles      []Role     `json:"pi_roles"`
}

// Properties carries registration state and organizational references.
type Properties struct {
	IsResetPwd     bool   `json:"is_reset_pwd"`
	RegisteredStep int    `json:"registered_step"`
	IsVerified     string `json:"is_verified"`
	CompID         *int64 `json:"comp_id"`
	BranchID       *int64 `json:"branch_id"`
	LocationID     *int64 `json:"location_id"`
	UserType       string `json:"user_type"`
}

// Role groups the console modules a user may access.
type Role struct {
	RoleID   int64    `json:"role_id"`
	RoleName string   `json:"role_name"`
	Modules  []Module `json:"pi_modules"`
}

// Module identifies one console module granted by a role.
type Module struct {
	ModuleID   int64  `json:"module_id"`
	ModuleName string `json:"module_name"`
}

// SigninResponse is the /signin payload.
type SigninResponse struct {
	Success      bool        `json:"success"`
	StatusCode   string      `json:"statusCode"`
	Msg          string      `json:"msg"`
	Data         []Principal `json:"data"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiryDate   string      `json:"expiry_date"`
	IsAppValid   bool        `json:"is_app_valid"`
}

func (r *SigninResponse) ok() bool        { return r.Success }
func (r *SigninResponse) message() string { return r.Msg }

// statusResponse is the minimal success-flag/message payload returned by
// /signup and /user.
type statusResponse struct {
	Success    bool   `json:"success"`
	StatusCode string `json:"statusCode"`
	Msg        string `json:"msg"`
}

func (r *statusResponse) ok() bool        { return r.Success }
func (r *statusResponse) message() string { return r.Msg }

// signinRequest is the /signin request body.
type signinRequest struct {
	UserEmail string `json:"user_email"`
	UserPwd   string `json:"user_pwd"`
}

// Registration is the /signup request body.
type Registration struct {
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserPwd    string `json:"user_pwd"`
	UserMobile string `json:"user_mobile"`
	Gender     string `json:"gender"`
}

// UserUpdate is the /user request body: the full updatable profile field
// set, defaulted from the current principal by the caller.
type UserUpdate struct {
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserMobile string `json:"user_mobile"`
	Gender     string `json:"gender"`
	IsActive   bool   `json:"is_active"`
}

// Signin authenticates with the remote system. No bearer credential is
// attached to this call.
func (c *Client) Signin(ctx context.Context, email, password string) (*SigninResponse, error) {
	var resp SigninResponse
	body := signinRequest{UserEmail: email, UserPwd: password}
	if err := c.do(ctx, http.MethodPost, "/signin", nil, body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new user. No bearer credential is attached to this call.
func (c *Client) Signup(ctx context.Context, reg Registration) error {
	var resp statusResponse
	return c.do(ctx, http.MethodPost, "/signup", nil, reg, &resp, false)
}

// UpdateUser updates profile fields for the signed-in user. The bearer
// credential is sourced fresh from the token source at call time.
func (c *Client) UpdateUser(ctx context.Context, upd UserUpdate) error {
	var resp statusResponse
	return c.do(ctx, http.MethodPut, "/user", nil, upd, &resp, true)
}
