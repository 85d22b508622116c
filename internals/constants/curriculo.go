package constants

// Ids fixos das disciplinas da grade curricular. Mantidos em sincronia com o
// seed inicial do banco.
const (
	DisciplinaMatematica        uint = 1
	DisciplinaEnsinoGlobalizado uint = 2
	DisciplinaPortugues         uint = 3
	DisciplinaCiencias          uint = 4
	DisciplinaHistoria          uint = 5
	DisciplinaGeografia         uint = 6
	DisciplinaIngles            uint = 7
	DisciplinaArte              uint = 8
	DisciplinaEdFisica          uint = 9
)

// DisciplinaIDs mapeia a chave de cada matéria no boletim do histórico
// escolar para o id da disciplina correspondente.
var DisciplinaIDs = map[string]uint{
	"matematica":        DisciplinaMatematica,
	"ensinoGlobalizado": DisciplinaEnsinoGlobalizado,
	"portugues":         DisciplinaPortugues,
	"ciencias":          DisciplinaCiencias,
	"historia":          DisciplinaHistoria,
	"geografia":         DisciplinaGeografia,
	"ingles":            DisciplinaIngles,
	"arte":              DisciplinaArte,
	"edFisica":          DisciplinaEdFisica,
}

// DisciplinaNomes na ordem dos ids acima, usado pelo seed.
var DisciplinaNomes = []string{
	"Matemática",
	"Ensino Globalizado",
	"Português",
	"Ciências",
	"História",
	"Geografia",
	"Inglês",
	"Arte",
	"Educação Física",
}

// Séries do ensino fundamental em que o boletim é unificado na disciplina
// Ensino Globalizado (anos iniciais) versus por matéria (anos finais).
var (
	SeriesIniciais = []string{"1ano", "2ano", "3ano", "4ano", "5ano"}
	SeriesFinais   = []string{"6ano", "7ano", "8ano", "9ano"}
)

func IsSerieInicial(serie string) bool {
	for _, s := range SeriesIniciais {
		if s == serie {
			return true
		}
	}
	return false
}

func IsSerieFinal(serie string) bool {
	for _, s := range SeriesFinais {
		if s == serie {
			return true
		}
	}
	return false
}
