package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/interfaces/http/response"
	"complainthub.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup handles user registration
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Email already registered"))
			return
		}
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Invalid signup data"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Signup successful. Please verify the code sent to your email.",
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

// Login handles the password step of login. A successful check issues a
// fresh one-time code; no token is returned until the code is verified.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.Login(c.Request.Context(), &input); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password", domainerrors.ErrInvalidCredentials))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "OTP sent to your email",
	})
}

// VerifyOtp consumes a pending one-time code and issues the session token.
// Serves both the signup and login verification steps.
// POST /auth/verify-otp
// POST /auth/verify-otp-login
func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var input entities.VerifyOtpInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	token, user, err := h.authUsecase.VerifyOtp(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrOtpInvalid {
			response.Error(c, domainerrors.BadRequest("Invalid or expired OTP"))
			return
		}
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "OTP verified successfully",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// ResendOtp reissues a one-time code, invalidating any pending ones.
// POST /auth/resend-otp
func (h *AuthHandler) ResendOtp(c *gin.Context) {
	var input entities.ResendOtpInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ResendOtp(c.Request.Context(), input.Email); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		if err == domainerrors.ErrTooManyRequests {
			response.Error(c, domainerrors.TooManyRequests("Please wait before requesting another code"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "A new OTP has been sent to your email",
	})
}
