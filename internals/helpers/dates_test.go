package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("data pura", func(t *testing.T) {
		d, err := ParseDate("2012-03-15")
		assert.NoError(t, err)
		assert.Equal(t, "2012-03-15", FormatDate(d))
	})

	t.Run("com hora em RFC3339", func(t *testing.T) {
		d, err := ParseDate("2012-03-15T10:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, "2012-03-15", FormatDate(d))
	})

	t.Run("com hora sem fuso", func(t *testing.T) {
		d, err := ParseDate("2012-03-15T23:59:59")
		assert.NoError(t, err)
		assert.Equal(t, "2012-03-15", FormatDate(d))
	})

	t.Run("espaços nas pontas", func(t *testing.T) {
		d, err := ParseDate("  2012-03-15 ")
		assert.NoError(t, err)
		assert.Equal(t, "2012-03-15", FormatDate(d))
	})

	t.Run("formato brasileiro é recusado", func(t *testing.T) {
		_, err := ParseDate("15/03/2012")
		assert.ErrorIs(t, err, ErrDataInvalida)
	})

	t.Run("normaliza para meia-noite UTC", func(t *testing.T) {
		d, err := ParseDate("2012-03-15T10:30:00-03:00")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2012, 3, 15, 0, 0, 0, 0, time.UTC), time.Time(d))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	// mensagem do driver de sqlite usado nos testes
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: usuarios.email")))
	// mensagem já achatada do postgres
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "usuarios_email_key"`)))
}
