package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	disciplinaRoute "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/route"
	faltaRoute "github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/route"
	historicoRoute "github.com/brunosimionato/API-edusystem/internals/features/academics/historicos/route"
	horarioRoute "github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/route"
	notaRoute "github.com/brunosimionato/API-edusystem/internals/features/academics/notas/route"
	turmaRoute "github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/route"
	dashboardRoute "github.com/brunosimionato/API-edusystem/internals/features/dashboard/route"
	alunoRoute "github.com/brunosimionato/API-edusystem/internals/features/school/alunos/route"
	professorRoute "github.com/brunosimionato/API-edusystem/internals/features/school/professores/route"
	secretariaRoute "github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/route"
	authRoute "github.com/brunosimionato/API-edusystem/internals/features/users/auth/route"
	usuarioRoute "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/route"
	auth "github.com/brunosimionato/API-edusystem/internals/middlewares/auth"
)

// SetupRoutes monta todas as rotas da API. Login e bootstrap do primeiro
// usuário ficam fora do grupo autenticado.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	validate := validator.New()

	authRoute.AuthRoutes(app, db, validate)
	usuarioRoute.UsuarioPublicRoutes(app, db, validate)

	protected := app.Group("", auth.AuthMiddleware())

	usuarioRoute.UsuarioRoutes(protected, db, validate)
	alunoRoute.AlunoRoutes(protected, db, validate)
	professorRoute.ProfessorRoutes(protected, db, validate)
	secretariaRoute.SecretariaRoutes(protected, db, validate)
	disciplinaRoute.DisciplinaRoutes(protected, db, validate)
	turmaRoute.TurmaRoutes(protected, db, validate)
	horarioRoute.HorarioRoutes(protected, db, validate)
	notaRoute.NotaRoutes(protected, db, validate)
	faltaRoute.FaltaRoutes(protected, db, validate)
	historicoRoute.HistoricoRoutes(protected, db, validate)
	dashboardRoute.DashboardRoutes(protected, db)
}
