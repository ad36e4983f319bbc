package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
)

type userIDKey struct{}

// ErrNoUser is returned when a handler asks for the authenticated user on a
// context that never passed through the auth middleware.
var ErrNoUser = errors.New("auth: no authenticated user in context")

// Verifier validates bearer tokens issued by the third-party identity
// provider. The server never issues tokens itself.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// UserID extracts and validates the token, returning the subject claim that
// scopes every query downstream.
func (v *Verifier) UserID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("auth: parse token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("auth: subject claim: %w", err)
	}
	if subject == "" {
		return "", errors.New("auth: empty subject claim")
	}

	return subject, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// authenticated user id on the request context.
func (v *Verifier) Middleware(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := v.UserID(tokenString)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid bearer token", err)
			return
		}

		next(huma.WithValue(ctx, userIDKey{}, userID))
	}
}

// StaticUserMiddleware injects a fixed user id without token validation.
// Only for handler tests and local harnesses; never wired in main.
func StaticUserMiddleware(userID string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithValue(ctx, userIDKey{}, userID))
	}
}

// WithUserID returns a context carrying the given user id. Used by tests and
// by the middleware above.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id stored by the
// middleware.
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	if !ok || userID == "" {
		return "", ErrNoUser
	}
	return userID, nil
}
