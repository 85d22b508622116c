package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/constants"
	secretariaModel "github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/model"
	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

var (
	ErrNaoEncontrado = errors.New("Usuário não encontrado")
	ErrEmailEmUso    = errors.New("Email já está em uso")
)

type UsuarioService struct {
	DB *gorm.DB
}

func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{DB: db}
}

func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

func (s *UsuarioService) List(ctx context.Context) ([]model.UsuarioModel, error) {
	var usuarios []model.UsuarioModel
	err := s.DB.WithContext(ctx).Order("id_usuarios ASC").Find(&usuarios).Error
	return usuarios, err
}

func (s *UsuarioService) GetByID(ctx context.Context, id uint) (*model.UsuarioModel, error) {
	var usuario model.UsuarioModel
	if err := s.DB.WithContext(ctx).First(&usuario, "id_usuarios = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &usuario, nil
}

func (s *UsuarioService) GetByEmail(ctx context.Context, email string) (*model.UsuarioModel, error) {
	var usuario model.UsuarioModel
	if err := s.DB.WithContext(ctx).First(&usuario, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &usuario, nil
}

func (s *UsuarioService) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.DB.WithContext(ctx).Model(&model.UsuarioModel{}).Count(&total).Error
	return total, err
}

// Create grava o usuário com a senha já em hash. Usuários do tipo secretaria
// ganham a entidade correspondente na mesma transação.
func (s *UsuarioService) Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*model.UsuarioModel, error) {
	hash, err := HashSenha(req.Senha)
	if err != nil {
		return nil, err
	}

	usuario := req.ToModel()
	usuario.HashSenha = hash

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(usuario).Error; err != nil {
			return err
		}
		if usuario.TipoUsuario == constants.RoleSecretaria {
			sec := secretariaModel.SecretariaModel{IDUsuario: usuario.ID}
			if err := tx.Create(&sec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailEmUso
		}
		return nil, err
	}
	return usuario, nil
}

// Update mantém tipo_usuario e só troca o hash quando uma senha nova chega.
func (s *UsuarioService) Update(ctx context.Context, id uint, req *dto.UpdateUsuarioRequest) (*model.UsuarioModel, error) {
	usuario, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToModel(usuario)
	if req.Senha != nil && *req.Senha != "" {
		hash, err := HashSenha(*req.Senha)
		if err != nil {
			return nil, err
		}
		usuario.HashSenha = hash
	}

	if err := s.DB.WithContext(ctx).Save(usuario).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailEmUso
		}
		return nil, err
	}
	return usuario, nil
}

// Deactivate inativa o usuário em vez de apagar a linha.
func (s *UsuarioService) Deactivate(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Model(&model.UsuarioModel{}).
		Where("id_usuarios = ?", id).
		Update("ativo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNaoEncontrado
	}
	return nil
}

func (s *UsuarioService) Reactivate(ctx context.Context, id uint) (*model.UsuarioModel, error) {
	res := s.DB.WithContext(ctx).Model(&model.UsuarioModel{}).
		Where("id_usuarios = ?", id).
		Update("ativo", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNaoEncontrado
	}
	return s.GetByID(ctx, id)
}
