package security

import (
	"errors"
	"time"

	"quizhub/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

func GenerateToken(userID string, isTeacher bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"is_teacher": isTeacher,
		"exp":        time.Now().Add(config.AppConfig.JWTExp).Unix(),
		"iat":        time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// VerifyToken checks signature and temporal claims of tokenString and returns
// its private claims. Expired tokens surface jwtauth.ErrExpired so callers can
// log the failure mode distinctly from a malformed or forged token.
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		return nil, err
	}
	return jwt.MapClaims(token.PrivateClaims()), nil
}

// Helper functions to extract claims, can be used in middleware or services
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetIsTeacherFromClaims(claims jwt.MapClaims) (bool, error) {
	isTeacher, ok := claims["is_teacher"].(bool)
	if !ok {
		return false, errors.New("is_teacher claim is missing or not a bool")
	}
	return isTeacher, nil
}
