package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	"github.com/stakeway/backoffice/internal/domain/port/core"
)

// adminClaims are the JWT claims carried by an admin bearer token
type adminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuthorizer implements the Authorizer port with HMAC-signed JWTs. The
// admin credential pair is injected from configuration; the domain never
// touches it.
type JWTAuthorizer struct {
	adminUsername string
	adminPassword string
	secret        []byte
	tokenTTL      time.Duration
	timeProvider  core.TimeProvider
}

// NewJWTAuthorizer creates an authorizer with the given credentials and signing secret
func NewJWTAuthorizer(
	adminUsername, adminPassword, secret string,
	tokenTTL time.Duration,
	timeProvider core.TimeProvider,
) *JWTAuthorizer {
	return &JWTAuthorizer{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		secret:        []byte(secret),
		tokenTTL:      tokenTTL,
		timeProvider:  timeProvider,
	}
}

// Login validates the admin credential pair and issues a signed bearer token
func (a *JWTAuthorizer) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPassword)) == 1
	if !userOK || !passOK {
		return "", errs.ErrInvalidCredentials
	}

	now := a.timeProvider.Now()
	claims := adminClaims{
		Username: a.adminUsername,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return signed, nil
}

// Verify parses a bearer token and returns the admin identity it carries
func (a *JWTAuthorizer) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errs.ErrInvalidToken
	}

	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.timeProvider.Now))

	if err != nil || !token.Valid {
		return "", errs.ErrInvalidToken
	}
	return claims.Username, nil
}
