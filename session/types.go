package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys for the persisted session, shared by every driver. Absence
// of a required key at startup means "not authenticated".
const (
	KeyPrincipal    = "agentone-user"
	KeyAccessToken  = "agentone-token"
	KeyRefreshToken = "agentone-refresh-token"
)

// Credentials are the opaque access and refresh tokens issued at signin.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the access-token expiry has passed. A zero expiry
// means the server never disclosed one; such credentials never expire
// client-side.
func (c Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// newCredentials builds Credentials from a signin response. The
// server-supplied expiry date wins; when it is absent or unparseable and
// the access token happens to be a JWT, the unverified exp claim is used
// instead. The claim is never trusted for anything beyond expiry display.
func newCredentials(accessToken, refreshToken, expiryDate string) Credentials {
	creds := Credentials{AccessToken: accessToken, RefreshToken: refreshToken}
	if t, err := time.Parse(time.RFC3339, expiryDate); err == nil {
		creds.ExpiresAt = t
		return creds
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			creds.ExpiresAt = exp.Time
		}
	}
	return creds
}
