package services

import (
	"encoding/json"
	"strings"

	"hotelrev/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken extracts the user ID and role from a token payload
// without verifying the signature. Signature checks happen in the auth
// middleware; this is for handlers that only need the identity.
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "cannot decode token payload", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "cannot parse token payload", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no user info", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no user id", nil)
	}

	role, okRole := userInfo["role"].(string)
	if !okRole {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no role", nil)
	}

	return uint(userID), role, nil
}

// GetIDFromToken extracts only the user ID.
func GetIDFromToken(tokenString string) (uint, error) {
	userID, _, err := GetUserIDFromToken(tokenString)
	return userID, err
}
