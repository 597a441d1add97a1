package user

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"Privilege-Backend/internal/utils/mailing"
	"Privilege-Backend/pkg/jwt"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		GetUserByEmailOrPhone(ctx context.Context, value string) (domain.UserResponse, error)
		UpdatePoints(ctx context.Context, userID string, newPoints int) error
		EnsureProfile(ctx context.Context, profile domain.OAuthProfile) (domain.LoginResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user, err := s.createProfile(ctx, uuid.New(), req.Email, req.FullName, req.Phone, string(hash))
	if err != nil {
		return domain.UserResponse{}, err
	}

	if err := mailing.SendWelcomeMail(user.Email, user.FullName, domain.WELCOME_BONUS_POINTS); err != nil {
		log.Printf("Error sending welcome mail to %s: %v", user.Email, err)
	}

	return toUserResponse(user), nil
}

// createProfile provisions the member row together with its single
// welcome bonus transaction. authID becomes the profile's primary key
// and must be supplied by the caller.
func (s *userService) createProfile(ctx context.Context, authID uuid.UUID, email, fullName, phone, passwordHash string) (*entities.User, error) {
	if authID == uuid.Nil {
		return nil, domain.ErrAuthIDRequired
	}

	now := time.Now()
	user := &entities.User{
		ID:           authID,
		Email:        email,
		Phone:        phone,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Points:       domain.WELCOME_BONUS_POINTS,
		MemberLevel:  entities.MemberLevelBronze,
		Role:         domain.RoleUser,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	bonus := &entities.PointTransaction{
		ID:              uuid.New(),
		UserID:          authID,
		Points:          domain.WELCOME_BONUS_POINTS,
		TransactionType: entities.TransactionTypeBonus,
		Description:     domain.WELCOME_BONUS_DESCRIPTION,
		CreatedAt:       now,
	}

	if err := s.userRepository.CreateWithWelcomeBonus(ctx, user, bonus); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// EnsureProfile is the idempotent provisioning step behind the OAuth
// callback: an existing profile is returned as-is, a missing one is
// created with the same welcome bonus policy as Register.
func (s *userService) EnsureProfile(ctx context.Context, profile domain.OAuthProfile) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, profile.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, err
		}
		user, err = s.createProfile(ctx, uuid.New(), profile.Email, deriveDisplayName(profile), "", "")
		if err != nil {
			return domain.LoginResponse{}, err
		}
		if mailErr := mailing.SendWelcomeMail(user.Email, user.FullName, domain.WELCOME_BONUS_POINTS); mailErr != nil {
			log.Printf("Error sending welcome mail to %s: %v", user.Email, mailErr)
		}
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// deriveDisplayName prefers the provider's full name, then the
// given/family pair, then the email's local part.
func deriveDisplayName(profile domain.OAuthProfile) string {
	if profile.Name != "" {
		return profile.Name
	}
	if profile.GivenName != "" || profile.FamilyName != "" {
		return strings.TrimSpace(profile.GivenName + " " + profile.FamilyName)
	}
	if at := strings.Index(profile.Email, "@"); at > 0 {
		return profile.Email[:at]
	}
	return profile.Email
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUserByEmailOrPhone(ctx context.Context, value string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByEmailOrPhone(ctx, value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// UpdatePoints overwrites the denormalized balance without touching the
// ledger. Ledger-backed paths live in the points service; this is the
// raw correction used by admin tooling.
func (s *userService) UpdatePoints(ctx context.Context, userID string, newPoints int) error {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.ErrParseUUID
	}
	return s.userRepository.UpdatePoints(ctx, userID, newPoints)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		Phone:       user.Phone,
		FullName:    user.FullName,
		Points:      user.Points,
		MemberLevel: user.MemberLevel,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
