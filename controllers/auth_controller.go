package controllers

import (
	"hotelrev/constants"
	"hotelrev/dto"
	"hotelrev/errors"
	"hotelrev/models"
	"hotelrev/response"
	"hotelrev/services"
	"hotelrev/validator"

	"github.com/gin-gonic/gin"
)

const (
	accessTokenMinutes  = 60
	refreshTokenMinutes = 7 * 24 * 60
)

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Location:    user.Location,
		Role:        user.Role,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

func issueTokens(c *gin.Context, user models.User) (dto.AuthResponse, error) {
	info := services.UserInfo{UserId: user.ID, Role: user.Role}

	accessToken, err := services.GenerateToken(info, accessTokenMinutes, true)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	refreshToken, err := services.GenerateToken(info, refreshTokenMinutes, false)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	services.SetTokenCookies(c, accessToken)
	return dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, nil
}

// Register creates an account and signs it in.
func Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user := models.User{
		Email:     request.Email,
		Password:  request.Password,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Location:  request.Location,
		Role:      request.Role,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	created, err := services.CreateUser(user)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeUserExists {
			response.Conflict(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	auth, err := issueTokens(c, created)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, auth)
}

// Login authenticates with email and password.
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := services.Authenticate(request.Email, request.Password)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	auth, err := issueTokens(c, user)
	if err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(user.ID, constants.ActionLogin, "user", user.ID, nil)

	response.Success(c, auth)
}

// GoogleLogin signs in with a Google ID token, provisioning the account
// on first use.
func GoogleLogin(c *gin.Context) {
	var request dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	email, name, err := services.ValidateGoogleToken(c.Request.Context(), request.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	user, err := services.GetUserByEmail(email)
	if err != nil {
		user, err = services.CreateGoogleUser(name, email)
		if err != nil {
			response.ServerError(c)
			return
		}
	}

	auth, err := issueTokens(c, user)
	if err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(user.ID, constants.ActionLogin, "user", user.ID, nil)

	response.Success(c, auth)
}

// GetProfile returns the signed-in user.
func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.GetUserByID(userID)
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// Logout clears the access token cookie.
func Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", true, false)
	response.Success(c, nil)
}
