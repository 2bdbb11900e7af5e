package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/taller-api/pkg/jwt"
)

// JWTConfig parámetros para emitir tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase registro y login de usuarios. El control de acceso por rol lo
// aplica el middleware HTTP con el rol embebido en el token.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterInput datos de alta de usuario.
type RegisterInput struct {
	Username string
	Nombre   string
	Password string
	Role     string
}

var validRoles = map[string]bool{
	entity.RoleAdmin:    true,
	entity.RoleAlmacen:  true,
	entity.RoleCompras:  true,
	entity.RoleMecanico: true,
	entity.RoleAuditor:  true,
}

// Register da de alta un usuario activo con la contraseña hasheada (bcrypt).
func (uc *UseCase) Register(_ context.Context, in RegisterInput) (*entity.User, error) {
	if in.Username == "" || in.Password == "" || !validRoles[in.Role] {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:       in.Username,
		Nombre:         in.Nombre,
		HashedPassword: string(hashed),
		Activo:         true,
		Role:           in.Role,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login valida credenciales y devuelve un JWT con username y rol.
func (uc *UseCase) Login(_ context.Context, username, password string) (string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil || !user.Activo {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return pkgjwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
