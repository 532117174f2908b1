package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"sharecart/internal/config"
	"sharecart/pkg/domain"
	"sharecart/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey string

const (
	// UserIDKey is the context key of the authenticated domain.UserID.
	UserIDKey ctxKey = "UserID"
	// PermissionsKey is the context key of the []domain.Permission granted by the token.
	PermissionsKey ctxKey = "Permissions"
)

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// BearerAuth is the raw token taken from the Authorization header.
type BearerAuth struct {
	Token string
}

// Claims are the JWT claims understood by the API. The subject is the user
// UUID.
type Claims struct {
	jwt.RegisteredClaims

	Permissions []string `json:"permissions,omitempty"`
}

// SecHandler authenticates requests with RS256 signed bearer tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies the token and returns a context carrying the
// user id and permissions it grants.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, t BearerAuth) (context.Context, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	permissions := make([]domain.Permission, 0, len(claims.Permissions))
	for _, p := range claims.Permissions {
		permissions = append(permissions, domain.Permission(p))
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))
	ctx = context.WithValue(ctx, PermissionsKey, permissions)

	return ctx, nil
}

// RequesterFromContext returns the requester stored by HandleBearerAuth, or
// an anonymous one.
func RequesterFromContext(ctx context.Context) domain.Requester {
	userID, ok := ctx.Value(UserIDKey).(domain.UserID)
	if !ok {
		return domain.Anonymous()
	}
	permissions, _ := ctx.Value(PermissionsKey).([]domain.Permission)

	return domain.Requester{UserID: userID, Permissions: permissions}
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", true
	}

	return strings.TrimSpace(token), true
}
