package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelrev/config"
	apperrors "hotelrev/errors"
	"hotelrev/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, apperrors.ErrUserNotFound
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByID(userID uint) (models.User, error) {
	var user models.User
	result := config.DB.First(&user, userID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, apperrors.ErrUserNotFound
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// CreateUser registers a new account with a hashed password. The role
// defaults to user when the input leaves it empty.
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeRequiredField,
			"email and password are required", nil)
	}

	if _, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeUserExists,
			fmt.Sprintf("email %s is already in use", input.Email), nil)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		Email:     input.Email,
		Password:  hashedPassword,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Location:  input.Location,
		Role:      role,
		IsActive:  true,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// Authenticate checks credentials and stamps the login time.
func Authenticate(email, password string) (models.User, error) {
	user, err := GetUserByEmail(email)
	if err != nil {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeInvalidPassword,
			"invalid email or password", nil)
	}

	if !user.IsActive {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeUnauthorized,
			"account is deactivated", nil)
	}

	if err := CheckPassword(user.Password, password); err != nil {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeInvalidPassword,
			"invalid email or password", nil)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := config.DB.Model(&user).Update("last_login_at", now).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ValidateGoogleToken verifies an ID token against the configured OAuth
// client and returns the email and display name claims.
func ValidateGoogleToken(ctx context.Context, token string) (email, name string, err error) {
	payload, err := idtoken.Validate(ctx, token, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return "", "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken,
			"google token validation failed", err)
	}

	email, _ = payload.Claims["email"].(string)
	name, _ = payload.Claims["name"].(string)
	if email == "" {
		return "", "", apperrors.NewAppError(apperrors.ErrCodeInvalidEmail,
			"google token carries no email", nil)
	}
	return email, name, nil
}

// CreateGoogleUser provisions an account for a Google sign-in. Password
// stays empty; these accounts authenticate through Google only.
func CreateGoogleUser(name, email string) (models.User, error) {
	if _, err := GetUserByEmail(email); err == nil {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeUserExists,
			fmt.Sprintf("email %s is already in use", email), nil)
	}

	user := models.User{
		Email:     email,
		FirstName: name,
		Role:      models.RoleUser,
		IsActive:  true,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}
