package dto

import (
	"strings"

	turmaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	"github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type ResponsavelRequest struct {
	Nome       string `json:"nome" validate:"required,min=2,max=120"`
	CPF        string `json:"cpf" validate:"required"`
	Telefone   string `json:"telefone" validate:"required"`
	Parentesco string `json:"parentesco" validate:"required"`
}

// HistoricoLinhaRequest é uma linha de histórico de escola anterior. Notas é
// um boletim por matéria; valores nulos ou vazios são descartados no service.
type HistoricoLinhaRequest struct {
	EscolaAnterior string                 `json:"escolaAnterior"`
	NomeEscola     string                 `json:"nomeEscola"`
	SerieAnterior  string                 `json:"serieAnterior" validate:"required"`
	AnoConclusao   int                    `json:"anoConclusao" validate:"required"`
	Notas          map[string]interface{} `json:"notas"`
}

func (h *HistoricoLinhaRequest) Escola() string {
	if h.EscolaAnterior != "" {
		return h.EscolaAnterior
	}
	return h.NomeEscola
}

// =========================
// CREATE
// =========================
type CreateAlunoRequest struct {
	Nome       string  `json:"nome" validate:"required,min=2,max=120"`
	CPF        string  `json:"cpf" validate:"required"`
	CNS        string  `json:"cns" validate:"required"`
	Nascimento string  `json:"nascimento" validate:"required"`
	Genero     string  `json:"genero" validate:"required"`
	Religiao   *string `json:"religiao"`
	Telefone   string  `json:"telefone" validate:"required"`

	Logradouro string `json:"logradouro" validate:"required"`
	Numero     string `json:"numero" validate:"required"`
	Bairro     string `json:"bairro" validate:"required"`
	CEP        string `json:"cep" validate:"required"`
	Cidade     string `json:"cidade" validate:"required"`
	Estado     string `json:"estado" validate:"required,len=2"`

	Responsavel1 ResponsavelRequest  `json:"responsavel1" validate:"required"`
	Responsavel2 *ResponsavelRequest `json:"responsavel2"`

	Turma    *uint `json:"turma"`
	IDTurmaS *uint `json:"idTurma"` // sinônimo

	// vínculo opcional com a conta de login do aluno
	IDUsuario      *uint `json:"idUsuario"`
	IDUsuarioSnake *uint `json:"id_usuario"` // sinônimo

	HistoricoEscolar      []HistoricoLinhaRequest `json:"historicoEscolar"`
	HistoricoEscolarSnake []HistoricoLinhaRequest `json:"historico_escolar"` // sinônimo
}

func (r *CreateAlunoRequest) Normalize() {
	if r.Turma == nil && r.IDTurmaS != nil {
		r.Turma = r.IDTurmaS
	}
	if r.IDUsuario == nil {
		r.IDUsuario = r.IDUsuarioSnake
	}
	if len(r.HistoricoEscolar) == 0 && len(r.HistoricoEscolarSnake) > 0 {
		r.HistoricoEscolar = r.HistoricoEscolarSnake
	}
	r.Nome = strings.TrimSpace(r.Nome)
	r.CPF = strings.TrimSpace(r.CPF)
	r.CNS = strings.TrimSpace(r.CNS)
	r.Estado = strings.ToUpper(strings.TrimSpace(r.Estado))
	if r.Religiao != nil && strings.TrimSpace(*r.Religiao) == "" {
		r.Religiao = nil
	}
}

func (r *CreateAlunoRequest) ToModel() (*model.AlunoModel, error) {
	nascimento, err := helper.ParseDate(r.Nascimento)
	if err != nil {
		return nil, err
	}

	m := &model.AlunoModel{
		IDUsuario:  r.IDUsuario,
		Nome:       r.Nome,
		CPF:        r.CPF,
		CNS:        r.CNS,
		Nascimento: nascimento,
		Genero:     r.Genero,
		Religiao:   r.Religiao,
		Telefone:   r.Telefone,
		Logradouro: r.Logradouro,
		Numero:     r.Numero,
		Bairro:     r.Bairro,
		CEP:        r.CEP,
		Cidade:     r.Cidade,
		Estado:     r.Estado,

		Responsavel1Nome:       r.Responsavel1.Nome,
		Responsavel1CPF:        r.Responsavel1.CPF,
		Responsavel1Telefone:   r.Responsavel1.Telefone,
		Responsavel1Parentesco: r.Responsavel1.Parentesco,
	}
	if r.Responsavel2 != nil {
		m.Responsavel2Nome = &r.Responsavel2.Nome
		m.Responsavel2CPF = &r.Responsavel2.CPF
		m.Responsavel2Telefone = &r.Responsavel2.Telefone
		m.Responsavel2Parentesco = &r.Responsavel2.Parentesco
	}
	return m, nil
}

// =========================
// UPDATE (parcial)
// =========================
type UpdateAlunoRequest struct {
	Nome       *string `json:"nome" validate:"omitempty,min=2,max=120"`
	IDUsuario  *uint   `json:"idUsuario"`
	CNS        *string `json:"cns"`
	Nascimento *string `json:"nascimento"`
	Genero     *string `json:"genero"`
	Religiao   *string `json:"religiao"`
	Telefone   *string `json:"telefone"`
	Logradouro *string `json:"logradouro"`
	Numero     *string `json:"numero"`
	Bairro     *string `json:"bairro"`
	CEP        *string `json:"cep"`
	Cidade     *string `json:"cidade"`
	Estado     *string `json:"estado" validate:"omitempty,len=2"`
}

func (r *UpdateAlunoRequest) ApplyToModel(m *model.AlunoModel) error {
	if r.Nome != nil {
		m.Nome = strings.TrimSpace(*r.Nome)
	}
	if r.IDUsuario != nil {
		m.IDUsuario = r.IDUsuario
	}
	if r.CNS != nil {
		m.CNS = *r.CNS
	}
	if r.Nascimento != nil {
		nascimento, err := helper.ParseDate(*r.Nascimento)
		if err != nil {
			return err
		}
		m.Nascimento = nascimento
	}
	if r.Genero != nil {
		m.Genero = *r.Genero
	}
	if r.Religiao != nil {
		m.Religiao = r.Religiao
	}
	if r.Telefone != nil {
		m.Telefone = *r.Telefone
	}
	if r.Logradouro != nil {
		m.Logradouro = *r.Logradouro
	}
	if r.Numero != nil {
		m.Numero = *r.Numero
	}
	if r.Bairro != nil {
		m.Bairro = *r.Bairro
	}
	if r.CEP != nil {
		m.CEP = *r.CEP
	}
	if r.Cidade != nil {
		m.Cidade = *r.Cidade
	}
	if r.Estado != nil {
		m.Estado = strings.ToUpper(*r.Estado)
	}
	return nil
}

// =========================
// RESPONSE
// =========================
type ResponsavelResponse struct {
	Nome       string `json:"nome"`
	CPF        string `json:"cpf"`
	Telefone   string `json:"telefone"`
	Parentesco string `json:"parentesco"`
}

type AlunoResponse struct {
	ID         uint    `json:"id"`
	Nome       string  `json:"nome"`
	CPF        string  `json:"cpf"`
	CNS        string  `json:"cns"`
	Nascimento string  `json:"nascimento"`
	Genero     string  `json:"genero"`
	Religiao   *string `json:"religiao"`
	Telefone   string  `json:"telefone"`

	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Bairro     string `json:"bairro"`
	CEP        string `json:"cep"`
	Cidade     string `json:"cidade"`
	Estado     string `json:"estado"`

	Responsavel1 ResponsavelResponse  `json:"responsavel1"`
	Responsavel2 *ResponsavelResponse `json:"responsavel2"`

	Turma *turmaModel.TurmaModel `json:"turma"`
}

func FromModel(m *model.AlunoModel, turma *turmaModel.TurmaModel) AlunoResponse {
	resp := AlunoResponse{
		ID:         m.ID,
		Nome:       m.Nome,
		CPF:        m.CPF,
		CNS:        m.CNS,
		Nascimento: helper.FormatDate(m.Nascimento),
		Genero:     m.Genero,
		Religiao:   m.Religiao,
		Telefone:   m.Telefone,
		Logradouro: m.Logradouro,
		Numero:     m.Numero,
		Bairro:     m.Bairro,
		CEP:        m.CEP,
		Cidade:     m.Cidade,
		Estado:     m.Estado,
		Responsavel1: ResponsavelResponse{
			Nome:       m.Responsavel1Nome,
			CPF:        m.Responsavel1CPF,
			Telefone:   m.Responsavel1Telefone,
			Parentesco: m.Responsavel1Parentesco,
		},
		Turma: turma,
	}
	if m.Responsavel2Nome != nil {
		resp.Responsavel2 = &ResponsavelResponse{
			Nome:       deref(m.Responsavel2Nome),
			CPF:        deref(m.Responsavel2CPF),
			Telefone:   deref(m.Responsavel2Telefone),
			Parentesco: deref(m.Responsavel2Parentesco),
		}
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
