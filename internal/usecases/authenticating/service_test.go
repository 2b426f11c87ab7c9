package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/home-services-api/infrastructure/repository/mocks"
	"github.com/vfg2006/home-services-api/internal/config"
	"github.com/vfg2006/home-services-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, authConfig())

	t.Run("Cria usuário com hash de senha e role padrão", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("joana@example.com").Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(u *domain.User) (*domain.User, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha123")))
				assert.Equal(t, 3, u.RoleID)
				assert.True(t, u.Active)
				u.ID = 1
				return u, nil
			})

		created, err := service.CreateUser(&domain.User{
			Name:  "Joana",
			Email: "joana@example.com",
		}, "senha123")

		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		// O hash nunca volta na resposta
		assert.Empty(t, created.PasswordHash)
	})

	t.Run("Email já cadastrado é recusado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("joana@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:  "Joana",
			Email: "joana@example.com",
		}, "senha123")

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Campos obrigatórios ausentes são recusados", func(t *testing.T) {
		_, err := service.CreateUser(&domain.User{Name: "Joana"}, "senha123")
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = service.CreateUser(&domain.User{Name: "Joana", Email: "j@example.com"}, "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestLoginAndValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, authConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           42,
		Name:         "Carlos",
		Email:        "carlos@example.com",
		PasswordHash: string(hash),
		RoleID:       2,
		Active:       true,
	}

	t.Run("Login válido gera token que valida de volta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("carlos@example.com").Return(user, nil)

		token, err := service.LoginUser("carlos@example.com", "senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("carlos@example.com").Return(user, nil)

		_, err := service.LoginUser("carlos@example.com", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

		_, err := service.LoginUser("ninguem@example.com", "senha123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário desativado", func(t *testing.T) {
		disabled := *user
		disabled.Active = false
		mockUserRepo.EXPECT().GetUserByEmail("carlos@example.com").Return(&disabled, nil)

		_, err := service.LoginUser("carlos@example.com", "senha123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Token adulterado é recusado", func(t *testing.T) {
		_, err := service.ValidateToken("cabecalho.corpo.assinatura")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
