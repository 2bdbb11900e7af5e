package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/taller-api/internal/application/auth"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/pkg/jwt"
)

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

func newAuthFixture() (*fakeUserRepo, *auth.UseCase) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-prueba-taller",
		ExpMinutes: 15,
		Issuer:     "taller-api",
	})
	return repo, uc
}

func TestRegister_HasheaPassword(t *testing.T) {
	_, uc := newAuthFixture()

	user, err := uc.Register(context.Background(), auth.RegisterInput{
		Username: "jperez",
		Nombre:   "Juan Pérez",
		Password: "contrasena-larga",
		Role:     entity.RoleAlmacen,
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.Activo)
	assert.NotEqual(t, "contrasena-larga", user.HashedPassword, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("contrasena-larga")))
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	_, uc := newAuthFixture()
	in := auth.RegisterInput{Username: "jperez", Password: "contrasena-larga", Role: entity.RoleAlmacen}

	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_RolInvalido(t *testing.T) {
	_, uc := newAuthFixture()
	_, err := uc.Register(context.Background(), auth.RegisterInput{
		Username: "jperez",
		Password: "contrasena-larga",
		Role:     "superusuario",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	_, uc := newAuthFixture()
	_, err := uc.Register(context.Background(), auth.RegisterInput{
		Username: "jperez",
		Password: "contrasena-larga",
		Role:     entity.RoleAuditor,
	})
	require.NoError(t, err)

	token, err := uc.Login(context.Background(), "jperez", "contrasena-larga")
	require.NoError(t, err)

	username, role, err := jwt.Parse("secreto-de-prueba-taller", token)
	require.NoError(t, err)
	assert.Equal(t, "jperez", username)
	assert.Equal(t, entity.RoleAuditor, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	_, uc := newAuthFixture()
	_, err := uc.Register(context.Background(), auth.RegisterInput{
		Username: "jperez",
		Password: "contrasena-larga",
		Role:     entity.RoleAlmacen,
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "jperez", "otra-contrasena")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	_, uc := newAuthFixture()
	_, err := uc.Login(context.Background(), "nadie", "contrasena-larga")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo, uc := newAuthFixture()
	_, err := uc.Register(context.Background(), auth.RegisterInput{
		Username: "jperez",
		Password: "contrasena-larga",
		Role:     entity.RoleAlmacen,
	})
	require.NoError(t, err)
	repo.users["jperez"].Activo = false

	_, err = uc.Login(context.Background(), "jperez", "contrasena-larga")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
