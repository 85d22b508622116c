package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/constants"
	"github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/model"
	usuarioModel "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
	usuarioService "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

var (
	ErrNaoEncontrada      = errors.New("Secretaria não encontrada")
	ErrUsuarioObrigatorio = errors.New("Informe o usuário da secretaria ou um idUsuario existente")
	ErrEmailEmUso         = errors.New("Email já está em uso")
)

type SecretariaService struct {
	DB *gorm.DB
}

func NewSecretariaService(db *gorm.DB) *SecretariaService {
	return &SecretariaService{DB: db}
}

func (s *SecretariaService) List(ctx context.Context) ([]model.SecretariaModel, error) {
	var secretarias []model.SecretariaModel
	err := s.DB.WithContext(ctx).
		Preload("Usuario").
		Order("id_secretaria ASC").
		Find(&secretarias).Error
	return secretarias, err
}

func (s *SecretariaService) GetByID(ctx context.Context, id uint) (*model.SecretariaModel, error) {
	var secretaria model.SecretariaModel
	err := s.DB.WithContext(ctx).
		Preload("Usuario").
		First(&secretaria, "id_secretaria = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrada
		}
		return nil, err
	}
	return &secretaria, nil
}

func (s *SecretariaService) GetByUsuarioID(ctx context.Context, usuarioID uint) (*model.SecretariaModel, error) {
	var secretaria model.SecretariaModel
	err := s.DB.WithContext(ctx).First(&secretaria, "id_usuario = ?", usuarioID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrada
		}
		return nil, err
	}
	return &secretaria, nil
}

// Create segue o mesmo contrato transacional do professor.
func (s *SecretariaService) Create(ctx context.Context, req *dto.CreateSecretariaRequest) (*model.SecretariaModel, error) {
	secretaria := &model.SecretariaModel{}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Usuario != nil {
			hash, err := usuarioService.HashSenha(req.Usuario.Senha)
			if err != nil {
				return err
			}
			usuario := req.Usuario.ToModel()
			usuario.TipoUsuario = constants.RoleSecretaria
			usuario.HashSenha = hash
			if err := tx.Create(usuario).Error; err != nil {
				return err
			}
			secretaria.IDUsuario = usuario.ID
		} else if req.IDUsuario != nil {
			secretaria.IDUsuario = *req.IDUsuario
		}

		if secretaria.IDUsuario == 0 {
			return ErrUsuarioObrigatorio
		}
		return tx.Create(secretaria).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailEmUso
		}
		return nil, err
	}

	return s.GetByID(ctx, secretaria.ID)
}

// Delete remove a secretaria e o usuário que a respalda.
func (s *SecretariaService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var secretaria model.SecretariaModel
		if err := tx.First(&secretaria, "id_secretaria = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNaoEncontrada
			}
			return err
		}
		if err := tx.Delete(&secretaria).Error; err != nil {
			return err
		}
		return tx.Where("id_usuarios = ?", secretaria.IDUsuario).
			Delete(&usuarioModel.UsuarioModel{}).Error
	})
}
