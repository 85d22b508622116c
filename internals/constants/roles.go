package constants

// Papéis aceitos em usuarios.tipo_usuario.
const (
	RoleAluno      = "aluno"
	RoleProfessor  = "professor"
	RoleSecretaria = "secretaria"
)

var AllowedRoles = []string{RoleAluno, RoleProfessor, RoleSecretaria}

func IsValidRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
