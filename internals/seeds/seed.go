package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/constants"
	disciplinaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	professorModel "github.com/brunosimionato/API-edusystem/internals/features/school/professores/model"
	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/dto"
	usuarioModel "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
	usuarioService "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/service"
)

// RunAllSeeds popula o catálogo fixo de disciplinas e uma conta de
// secretaria inicial. Idempotente: registros existentes são pulados.
func RunAllSeeds(db *gorm.DB) {
	seedDisciplinas(db)
	seedSecretariaInicial(db)
	seedProfessorDemo(db)
}

func seedDisciplinas(db *gorm.DB) {
	var count int64
	if err := db.Model(&disciplinaModel.DisciplinaModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Falha ao verificar disciplinas: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Disciplinas já existem, seed pulado.")
		return
	}

	disciplinas := make([]disciplinaModel.DisciplinaModel, 0, len(constants.DisciplinaNomes))
	for i, nome := range constants.DisciplinaNomes {
		disciplinas = append(disciplinas, disciplinaModel.DisciplinaModel{
			ID:   uint(i + 1),
			Nome: nome,
		})
	}
	if err := db.Create(&disciplinas).Error; err != nil {
		log.Printf("❌ Falha ao inserir disciplinas: %v", err)
		return
	}
	log.Printf("✅ %d disciplinas inseridas", len(disciplinas))
}

func seedSecretariaInicial(db *gorm.DB) {
	var count int64
	if err := db.Model(&usuarioModel.UsuarioModel{}).
		Where("tipo_usuario = ?", constants.RoleSecretaria).
		Count(&count).Error; err != nil {
		log.Printf("❌ Falha ao verificar secretarias: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Secretaria inicial já existe, seed pulado.")
		return
	}

	svc := usuarioService.NewUsuarioService(db)
	req := &dto.CreateUsuarioRequest{
		Nome:        "Secretaria Escolar",
		Email:       "secretaria@edusystem.local",
		Senha:       "secretaria123",
		TipoUsuario: constants.RoleSecretaria,
	}
	if _, err := svc.Create(context.Background(), req); err != nil {
		log.Printf("❌ Falha ao criar secretaria inicial: %v", err)
		return
	}
	log.Println("✅ Secretaria inicial criada (secretaria@edusystem.local)")
}

func seedProfessorDemo(db *gorm.DB) {
	var count int64
	if err := db.Model(&professorModel.ProfessorModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Falha ao verificar professores: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Professores já existem, seed pulado.")
		return
	}

	svc := usuarioService.NewUsuarioService(db)
	req := &dto.CreateUsuarioRequest{
		Nome:        "Professor Demonstração",
		Email:       "professor@edusystem.local",
		Senha:       "professor123",
		TipoUsuario: constants.RoleProfessor,
	}
	usuario, err := svc.Create(context.Background(), req)
	if err != nil {
		log.Printf("❌ Falha ao criar usuário do professor: %v", err)
		return
	}

	especialidade := constants.DisciplinaMatematica
	professor := professorModel.ProfessorModel{
		IDUsuario:                 usuario.ID,
		IDDisciplinaEspecialidade: &especialidade,
	}
	if err := db.Create(&professor).Error; err != nil {
		log.Printf("❌ Falha ao criar professor de demonstração: %v", err)
		return
	}
	log.Println("✅ Professor de demonstração criado (professor@edusystem.local)")
}
