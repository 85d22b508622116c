package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/constants"
	"github.com/brunosimionato/API-edusystem/internals/features/school/professores/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/school/professores/model"
	usuarioModel "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
	usuarioService "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

var (
	ErrNaoEncontrado      = errors.New("Professor não encontrado")
	ErrUsuarioObrigatorio = errors.New("Informe o usuário do professor ou um idUsuario existente")
	ErrEmailEmUso         = errors.New("Email já está em uso")
)

type ProfessorService struct {
	DB *gorm.DB
}

func NewProfessorService(db *gorm.DB) *ProfessorService {
	return &ProfessorService{DB: db}
}

// List devolve apenas professores cujo usuário segue ativo.
func (s *ProfessorService) List(ctx context.Context) ([]model.ProfessorModel, error) {
	var professores []model.ProfessorModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN usuarios ON usuarios.id_usuarios = professores.id_usuario").
		Where("usuarios.ativo = ?", true).
		Preload("Usuario").
		Preload("DisciplinaEspecialidade").
		Order("professores.id_professor ASC").
		Find(&professores).Error
	return professores, err
}

func (s *ProfessorService) GetByID(ctx context.Context, id uint) (*model.ProfessorModel, error) {
	var professor model.ProfessorModel
	err := s.DB.WithContext(ctx).
		Preload("Usuario").
		Preload("DisciplinaEspecialidade").
		First(&professor, "id_professor = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &professor, nil
}

func (s *ProfessorService) GetByUsuarioID(ctx context.Context, usuarioID uint) (*model.ProfessorModel, error) {
	var professor model.ProfessorModel
	err := s.DB.WithContext(ctx).First(&professor, "id_usuario = ?", usuarioID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &professor, nil
}

// Create grava usuário (quando enviado) e professor na mesma transação, para
// nunca sobrar usuário órfão se a segunda escrita falhar.
func (s *ProfessorService) Create(ctx context.Context, req *dto.CreateProfessorRequest) (*model.ProfessorModel, error) {
	professor := req.Professor.ToModel()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Usuario != nil {
			hash, err := usuarioService.HashSenha(req.Usuario.Senha)
			if err != nil {
				return err
			}
			usuario := req.Usuario.ToModel()
			usuario.TipoUsuario = constants.RoleProfessor
			usuario.HashSenha = hash
			if err := tx.Create(usuario).Error; err != nil {
				return err
			}
			professor.IDUsuario = usuario.ID
		}

		if professor.IDUsuario == 0 {
			return ErrUsuarioObrigatorio
		}
		return tx.Create(professor).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailEmUso
		}
		return nil, err
	}

	return s.GetByID(ctx, professor.ID)
}

func (s *ProfessorService) Update(ctx context.Context, id uint, req *dto.UpdateProfessorRequest) (*model.ProfessorModel, error) {
	professor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToModel(professor)
	// zera as associações para o Save não regravar usuário/disciplina
	professor.Usuario = nil
	professor.DisciplinaEspecialidade = nil

	if err := s.DB.WithContext(ctx).Save(professor).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete remove o professor e o usuário que o respalda.
func (s *ProfessorService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var professor model.ProfessorModel
		if err := tx.First(&professor, "id_professor = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNaoEncontrado
			}
			return err
		}
		if err := tx.Delete(&professor).Error; err != nil {
			return err
		}
		return tx.Where("id_usuarios = ?", professor.IDUsuario).
			Delete(&usuarioModel.UsuarioModel{}).Error
	})
}
