package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"quizhub/internal/common"
	"quizhub/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey    contextKey = "userID"
	IsTeacherCtxKey contextKey = "isTeacher"
)

// ResolveIdentity resolves the request's identity from its session carriers.
// Priority: the bearer header first (the credential the client most recently
// and explicitly obtained), then the ambient jwt cookie. A carrier that fails
// validation is logged and skipped rather than failing the request, so a stale
// bearer token never shadows a valid cookie. When neither carrier validates,
// the request proceeds anonymous; protected routes reject it via RequireAuth.
func ResolveIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokenString := bearerToken(r); tokenString != "" {
			if ctx, ok := identityFromToken(r.Context(), tokenString, "bearer"); ok {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			// fall through to the cookie carrier
		}

		if tokenString := jwtauth.TokenFromCookie(r); tokenString != "" {
			if ctx, ok := identityFromToken(r.Context(), tokenString, "cookie"); ok {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		next.ServeHTTP(w, r) // anonymous
	})
}

// bearerToken extracts the Authorization bearer token. Literal "undefined" and
// "null" leak out of client-side storage as stringified absent values; they are
// never treated as tokens.
func bearerToken(r *http.Request) string {
	token := jwtauth.TokenFromHeader(r)
	if token == "undefined" || token == "null" {
		return ""
	}
	return token
}

func identityFromToken(ctx context.Context, tokenString, carrier string) (context.Context, bool) {
	claims, err := security.VerifyToken(tokenString)
	if err != nil {
		// Expired and malformed/forged tokens both resolve anonymous, but they
		// are different operational signals and are logged apart.
		if errors.Is(err, jwtauth.ErrExpired) {
			log.Printf("auth: expired token presented via %s carrier", carrier)
		} else {
			log.Printf("auth: rejected token presented via %s carrier: %v", carrier, err)
		}
		return ctx, false
	}

	userID, err := security.GetUserIDFromClaims(claims)
	if err != nil {
		log.Printf("auth: token via %s carrier has invalid claims: %v", carrier, err)
		return ctx, false
	}
	isTeacher, err := security.GetIsTeacherFromClaims(claims)
	if err != nil {
		log.Printf("auth: token via %s carrier has invalid claims: %v", carrier, err)
		return ctx, false
	}

	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, IsTeacherCtxKey, isTeacher)
	return ctx, true
}

// RequireAuth rejects requests that resolved anonymous.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			common.RespondWithError(w, http.StatusUnauthorized, "Authorization required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func TeacherOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isTeacher, ok := GetIsTeacherFromContext(r.Context())
		if !ok || !isTeacher {
			common.RespondWithError(w, http.StatusForbidden, "Teacher access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// Helper to get the teacher flag from context
func GetIsTeacherFromContext(ctx context.Context) (bool, bool) {
	isTeacher, ok := ctx.Value(IsTeacherCtxKey).(bool)
	return isTeacher, ok
}
