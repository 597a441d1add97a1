package user

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"context"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users   map[string]*entities.User
	bonuses []*entities.PointTransaction
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) CreateWithWelcomeBonus(ctx context.Context, user *entities.User, bonus *entities.PointTransaction) error {
	f.users[user.ID.String()] = user
	f.bonuses = append(f.bonuses, bonus)
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmailOrPhone(ctx context.Context, value string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == value || u.Phone == value {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdatePoints(ctx context.Context, id string, newPoints int) error {
	if u, ok := f.users[id]; ok {
		u.Points = newPoints
	}
	return nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId
}

func (fakeJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}

func (fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func TestRegisterGrantsWelcomeBonus(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "member@example.com",
		Password: "secret-password",
		FullName: "Test Member",
		Phone:    "081234567890",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.WELCOME_BONUS_POINTS, res.Points)
	assert.Equal(t, entities.MemberLevelBronze, res.MemberLevel)

	stored := repo.users[res.ID]
	require.NotNil(t, stored)
	assert.Equal(t, domain.RoleUser, stored.Role)
	assert.NotEqual(t, "secret-password", stored.PasswordHash)

	require.Len(t, repo.bonuses, 1)
	bonus := repo.bonuses[0]
	assert.Equal(t, domain.WELCOME_BONUS_POINTS, bonus.Points)
	assert.Equal(t, entities.TransactionTypeBonus, bonus.TransactionType)
	assert.Equal(t, res.ID, bonus.UserID.String())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "member@example.com",
		Password: "secret-password",
		FullName: "Test Member",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Email:    "member@example.com",
		Password: "another-password",
		FullName: "Someone Else",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	assert.Len(t, repo.bonuses, 1)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	member := &entities.User{
		ID:           uuid.New(),
		Email:        "member@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	repo.users[member.ID.String()] = member

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "member@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "unknown@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "member@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+member.ID.String(), res.Token)
	assert.Equal(t, member.ID.String(), res.User.ID)
}

func TestEnsureProfileCreatesMissingMember(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})

	res, err := service.EnsureProfile(context.Background(), domain.OAuthProfile{
		Subject: "google-subject",
		Email:   "oauth@example.com",
		Name:    "OAuth Member",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "OAuth Member", res.User.FullName)
	assert.Equal(t, domain.WELCOME_BONUS_POINTS, res.User.Points)
	assert.Len(t, repo.bonuses, 1)
}

func TestEnsureProfileIsIdempotent(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})
	profile := domain.OAuthProfile{Subject: "google-subject", Email: "oauth@example.com", Name: "OAuth Member"}

	first, err := service.EnsureProfile(context.Background(), profile)
	require.NoError(t, err)
	second, err := service.EnsureProfile(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Len(t, repo.users, 1)
	assert.Len(t, repo.bonuses, 1)
}

func TestDeriveDisplayName(t *testing.T) {
	cases := []struct {
		name     string
		profile  domain.OAuthProfile
		expected string
	}{
		{"full name wins", domain.OAuthProfile{Name: "Full Name", GivenName: "Given", Email: "a@b.com"}, "Full Name"},
		{"given and family", domain.OAuthProfile{GivenName: "Given", FamilyName: "Family", Email: "a@b.com"}, "Given Family"},
		{"given only", domain.OAuthProfile{GivenName: "Given", Email: "a@b.com"}, "Given"},
		{"email local part", domain.OAuthProfile{Email: "member@example.com"}, "member"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, deriveDisplayName(tc.profile))
		})
	}
}

func TestUpdatePointsRejectsBadID(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), fakeJWTService{})

	err := service.UpdatePoints(context.Background(), "not-a-uuid", 500)
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
