package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/configs"
	"github.com/brunosimionato/API-edusystem/internals/constants"
	alunoModel "github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
	professorModel "github.com/brunosimionato/API-edusystem/internals/features/school/professores/model"
	secretariaModel "github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/model"
	"github.com/brunosimionato/API-edusystem/internals/features/users/auth/dto"
	usuarioService "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/service"
)

const tokenTTL = 24 * time.Hour

var (
	ErrUsuarioNaoEncontrado  = errors.New("Usuário não encontrado")
	ErrCredenciaisInvalidas  = errors.New("Credenciais inválidas")
	ErrRoleInvalida          = errors.New("Role inválida para este usuário")
	ErrUsuarioInativo        = errors.New("Usuário inativo")
	ErrEntidadeNaoEncontrada = errors.New("Entidade não encontrada para este usuário")
)

type AuthService struct {
	DB       *gorm.DB
	Usuarios *usuarioService.UsuarioService
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		DB:       db,
		Usuarios: usuarioService.NewUsuarioService(db),
	}
}

// Login resolve as credenciais até a entidade do papel e emite o token JWT.
// Cada etapa tem um único modo de falha com mensagem própria.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	usuario, err := s.Usuarios.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, usuarioService.ErrNaoEncontrado) {
			return "", ErrUsuarioNaoEncontrado
		}
		return "", err
	}

	if !usuarioService.VerificarSenha(usuario.HashSenha, req.Senha) {
		return "", ErrCredenciaisInvalidas
	}

	if usuario.TipoUsuario != req.Role {
		return "", ErrRoleInvalida
	}

	if !usuario.Ativo {
		return "", ErrUsuarioInativo
	}

	entity, err := s.entityForRole(ctx, usuario.TipoUsuario, usuario.ID)
	if err != nil {
		return "", err
	}

	// O payload leva só campos não sensíveis; hash_senha nunca entra aqui
	// (o model já o exclui da serialização JSON).
	claims := jwt.MapClaims{
		"usuario": map[string]interface{}{
			"id":           usuario.ID,
			"nome":         usuario.Nome,
			"email":        usuario.Email,
			"tipo_usuario": usuario.TipoUsuario,
		},
		"entity": entity,
		"role":   req.Role,
		"exp":    time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func (s *AuthService) entityForRole(ctx context.Context, role string, usuarioID uint) (interface{}, error) {
	switch role {
	case constants.RoleAluno:
		var aluno alunoModel.AlunoModel
		if err := s.DB.WithContext(ctx).First(&aluno, "id_usuario = ?", usuarioID).Error; err != nil {
			return nil, notFoundOr(err)
		}
		return aluno, nil
	case constants.RoleProfessor:
		var professor professorModel.ProfessorModel
		if err := s.DB.WithContext(ctx).First(&professor, "id_usuario = ?", usuarioID).Error; err != nil {
			return nil, notFoundOr(err)
		}
		return professor, nil
	case constants.RoleSecretaria:
		var secretaria secretariaModel.SecretariaModel
		if err := s.DB.WithContext(ctx).First(&secretaria, "id_usuario = ?", usuarioID).Error; err != nil {
			return nil, notFoundOr(err)
		}
		return secretaria, nil
	default:
		return nil, ErrRoleInvalida
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntidadeNaoEncontrada
	}
	return err
}
