package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/domain/mail"
	"complainthub.backend/internal/domain/repositories"
	"complainthub.backend/pkg/crypto"
	"complainthub.backend/pkg/jwt"
	"complainthub.backend/pkg/redis"
)

const dateOfBirthLayout = "2006-01-02"

var (
	generateOtpCode = crypto.GenerateOtpCode
	redisSetNX      = redis.SetNX
)

// AuthUsecase handles signup, login and OTP verification.
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	otpRepo        repositories.OtpRepository
	mailer         mail.OtpSender
	jwtService     *jwt.JWTService
	otpTTL         time.Duration
	resendCooldown time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.OtpRepository,
	mailer mail.OtpSender,
	jwtService *jwt.JWTService,
	otpTTL time.Duration,
	resendCooldown time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		otpRepo:        otpRepo,
		mailer:         mailer,
		jwtService:     jwtService,
		otpTTL:         otpTTL,
		resendCooldown: resendCooldown,
	}
}

// Signup creates a pending user and issues a signup OTP.
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.User, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PhoneCode:    input.PhoneCode,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse(dateOfBirthLayout, input.DateOfBirth)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}
		user.DateOfBirth = null.TimeFrom(dob)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := u.issueOtp(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password and issues a login OTP. The session token is
// only issued once the OTP is consumed.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) error {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	return u.issueOtp(ctx, user)
}

// VerifyOtp consumes a pending code and issues a session token. Signup and
// login verification share the same consume semantics.
func (u *AuthUsecase) VerifyOtp(ctx context.Context, input *entities.VerifyOtpInput) (string, *entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", nil, err
	}

	if err := u.otpRepo.Consume(ctx, user.ID, input.Otp, time.Now()); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", nil, domainerrors.ErrOtpInvalid
		}
		return "", nil, err
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResendOtp reissues a code, subject to a per-email cooldown.
func (u *AuthUsecase) ResendOtp(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if u.resendCooldown > 0 {
		ok, err := redisSetNX(ctx, "otp_resend:"+email, "1", u.resendCooldown)
		if err == nil && !ok {
			return domainerrors.ErrTooManyRequests
		}
		// A redis failure must not block authentication; throttling is
		// best-effort.
	}

	return u.issueOtp(ctx, user)
}

// issueOtp invalidates prior pending codes, stores a fresh one and hands it
// to the mailer. Only the newest code is ever live.
func (u *AuthUsecase) issueOtp(ctx context.Context, user *entities.User) error {
	if err := u.otpRepo.InvalidatePending(ctx, user.ID); err != nil {
		return err
	}

	code, err := generateOtpCode()
	if err != nil {
		return err
	}

	if err := u.otpRepo.Create(ctx, user.ID, code, time.Now().Add(u.otpTTL)); err != nil {
		return err
	}

	return u.mailer.SendOtp(ctx, user.Email, code)
}
