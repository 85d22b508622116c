package helper

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

var ErrDataInvalida = errors.New("data inválida, use YYYY-MM-DD")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate aceita datas em ISO (com ou sem hora) e normaliza para data pura.
func ParseDate(raw string) (datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			y, m, d := t.Date()
			return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
		}
	}
	return datatypes.Date{}, ErrDataInvalida
}

// FormatDate devolve a data no formato YYYY-MM-DD para as respostas JSON.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
