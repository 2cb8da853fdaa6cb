package utils

import (
	"errors"
	"time"
)

var ErrDataInvalida = errors.New("data inválida")

// Fuso usado nos registros civis (tokens, logs, config).
var saoPaulo = loadSaoPaulo()

func loadSaoPaulo() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// sem tzdata no host: offset fixo -03 (sem DST desde 2019)
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// ConvertDateToISO converte DD/MM/YYYY para ISO-8601 UTC com o horário fixo
// 21:18:00, mantendo compatibilidade com os registros já salvos.
func ConvertDateToISO(dateStr string) (string, error) {
	d, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return "", ErrDataInvalida
	}
	fixed := time.Date(d.Year(), d.Month(), d.Day(), 21, 18, 0, 0, time.UTC)
	return fixed.Format(isoMillis), nil
}

var isoLayouts = []string{
	isoMillis,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISO aceita os formatos ISO-8601 que o front envia: com ou sem
// milissegundos, com ou sem offset, ou só a data.
func ParseISO(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrDataInvalida
}

func IsValidISODateTime(value string) bool {
	_, err := ParseISO(value)
	return err == nil
}

// FormatSaoPaulo devolve o horário civil de São Paulo em ISO-8601.
func FormatSaoPaulo(t time.Time) string {
	return t.In(saoPaulo).Format(isoMillis)
}

func NowSaoPaulo() string {
	return FormatSaoPaulo(time.Now())
}

// DayBounds devolve [início, fim) do dia civil de t em São Paulo, já em UTC
// para comparar com as datas normalizadas do banco.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(saoPaulo)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, saoPaulo)
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}
