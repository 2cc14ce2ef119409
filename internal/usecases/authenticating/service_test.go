package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "test-secret-key"}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		assert.Equal(t, domain.RoleMember, user.RoleID)
		assert.False(t, user.Active)
		require.NotNil(t, user.CreatedByID)
		assert.Equal(t, 7, *user.CreatedByID)
		require.NotNil(t, user.TelegramToken)
		assert.Len(t, *user.TelegramToken, 12)
		assert.NotContains(t, *user.TelegramToken, "_")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
		user.ID = 42
		return user, nil
	})

	created, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        " Maria@Example.com ",
		PasswordHash: "Senha@123",
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, "maria@example.com", created.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@example.com",
		PasswordHash: "Senha@123",
	}, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_MissingFields(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateUser(&domain.User{Name: "Maria"}, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestLoginUser(t *testing.T) {
	service, userRepo := newTestService(t)

	accountID := "act_123"
	userRepo.EXPECT().GetUserByEmail("joao@example.com").Return(&domain.User{
		ID:           3,
		Name:         "João",
		Email:        "joao@example.com",
		Active:       true,
		RoleID:       domain.RoleAdmin,
		AdAccountID:  &accountID,
		PasswordHash: hashPassword(t, "Senha@123"),
	}, nil)

	token, err := service.LoginUser("joao@example.com", "Senha@123")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
	require.NotNil(t, claims.UserAccountID)
	assert.Equal(t, "act_123", *claims.UserAccountID)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByEmail("joao@example.com").Return(&domain.User{
		ID:           3,
		Active:       true,
		PasswordHash: hashPassword(t, "Senha@123"),
	}, nil)

	_, err := service.LoginUser("joao@example.com", "errada")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_DisabledUser(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByEmail("joao@example.com").Return(&domain.User{
		ID:           3,
		Active:       false,
		PasswordHash: hashPassword(t, "Senha@123"),
	}, nil)

	_, err := service.LoginUser("joao@example.com", "Senha@123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateToken("token-invalido")
	assert.Error(t, err)
}

func TestUpdateUser(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByID(5).Return(&domain.User{
		ID:     5,
		Name:   "Ana",
		RoleID: domain.RoleMember,
	}, nil)

	accountID := "act_999"
	locale := "en"
	active := true
	userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
		assert.Equal(t, "Ana Paula", user.Name)
		assert.True(t, user.Active)
		require.NotNil(t, user.AdAccountID)
		assert.Equal(t, "act_999", *user.AdAccountID)
		require.NotNil(t, user.Locale)
		assert.Equal(t, "en", *user.Locale)
		return nil
	})

	name := "Ana Paula"
	err := service.UpdateUser(&domain.UpdateUserRequest{
		ID:          5,
		Name:        &name,
		Active:      &active,
		AdAccountID: &accountID,
		Locale:      &locale,
	})

	require.NoError(t, err)
}

func TestGenerateStrongPassword(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
	userRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: domain.RoleMember}, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

	password, err := service.GenerateStrongPassword(1, 2)

	require.NoError(t, err)
	assert.Len(t, password, 12)
	assert.NoError(t, service.ValidatePasswordStrength(password))
}

func TestGenerateStrongPassword_RequiresAdmin(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: domain.RoleMember}, nil)

	_, err := service.GenerateStrongPassword(2, 3)
	assert.Error(t, err)
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "senha forte", password: "Abcdef1!", wantErr: false},
		{name: "muito curta", password: "Ab1!", wantErr: true},
		{name: "sem maiúscula", password: "abcdef1!", wantErr: true},
		{name: "sem número", password: "Abcdefg!", wantErr: true},
		{name: "sem caractere especial", password: "Abcdefg1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByID(4).Return(&domain.User{
		ID:           4,
		PasswordHash: hashPassword(t, "Antiga@123"),
	}, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova@Senha1")))
		return nil
	})

	err := service.ChangePassword(4, "Antiga@123", "Nova@Senha1")
	require.NoError(t, err)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByID(4).Return(&domain.User{
		ID:           4,
		PasswordHash: hashPassword(t, "Antiga@123"),
	}, nil)

	err := service.ChangePassword(4, "errada", "Nova@Senha1")
	assert.Error(t, err)
}
