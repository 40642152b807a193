// Package auth cobre login e a resolução do usuário operador padrão.
// A identidade aqui não é fronteira de segurança: serve de atribuição
// (appliedBy) nos registros de reajuste e movimentação.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
	"github.com/bibliostock/bibliostock-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login e consultas de identidade.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/senha, gera JWT e retorna token + usuário.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// GetIDByEmail resolve o id de um usuário pelo email. O cliente usa este
// endpoint uma vez para o operador padrão e guarda o id da sessão.
func (uc *AuthUseCase) GetIDByEmail(ctx context.Context, email string) (*dto.UserIDResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserIDResponse{ID: user.ID}, nil
}

// ResolveDefaultUser resolve o operador padrão no startup. Devolve o id
// vazio (sem erro) quando o usuário configurado não existe; a atribuição
// fica em branco nesse caso.
func (uc *AuthUseCase) ResolveDefaultUser(ctx context.Context, email string) (string, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.ID, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, FullName: u.FullName}
}
