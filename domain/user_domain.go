package domain

import (
	"errors"
	"time"
)

const (
	// Points granted once per newly created member profile, recorded
	// as a single bonus transaction.
	WELCOME_BONUS_POINTS      = 1000
	WELCOME_BONUS_DESCRIPTION = "Welcome bonus"
)

var (
	MessageSuccessRegister     = "user registered successfully"
	MessageSuccessLogin        = "login successful"
	MessageSuccessGetMe        = "user profile retrieved successfully"
	MessageSuccessGoogleLogin  = "google login successful"
	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetMe         = "failed to retrieve user profile"
	MessageFailedGoogleLogin   = "failed to login with google"
	MessageFailedOAuthExchange = "failed to complete google sign in"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrCredentialsInvalid     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrAuthIDRequired         = errors.New("auth id is required to create a profile")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		FullName string `json:"full_name" validate:"required"`
		Phone    string `json:"phone" validate:"omitempty,min=9,max=15"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID          string    `json:"id"`
		Email       string    `json:"email"`
		Phone       string    `json:"phone,omitempty"`
		FullName    string    `json:"full_name"`
		Points      int       `json:"points"`
		MemberLevel string    `json:"member_level"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	// OAuthProfile carries the identity fields received from the
	// OAuth provider after the redirect flow resolves.
	OAuthProfile struct {
		Subject    string `json:"sub"`
		Email      string `json:"email"`
		Name       string `json:"name"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
)
