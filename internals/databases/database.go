package database

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/configs"
	disciplinaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	faltaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/model"
	historicoModel "github.com/brunosimionato/API-edusystem/internals/features/academics/historicos/model"
	horarioModel "github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/model"
	notaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/notas/model"
	turmaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	alunoModel "github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
	professorModel "github.com/brunosimionato/API-edusystem/internals/features/school/professores/model"
	secretariaModel "github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/model"
	usuarioModel "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
)

// ConnectDB abre a conexão com o PostgreSQL usando as variáveis de ambiente.
func ConnectDB() (*gorm.DB, error) {
	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=edusystem",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func TunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return sqlDB.Ping()
}

// Migrate roda o AutoMigrate de todas as tabelas. Controlado por MIGRATE_DB=true.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&usuarioModel.UsuarioModel{},
		&disciplinaModel.DisciplinaModel{},
		&turmaModel.TurmaModel{},
		&alunoModel.AlunoModel{},
		&alunoModel.AlunoTurmaModel{},
		&professorModel.ProfessorModel{},
		&secretariaModel.SecretariaModel{},
		&horarioModel.HorarioModel{},
		&notaModel.NotaModel{},
		&faltaModel.FaltaModel{},
		&historicoModel.HistoricoEscolarModel{},
	)
}
