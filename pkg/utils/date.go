package utils

import (
	"math"
	"time"
)

// unixEpochSerial é o número serial de planilha correspondente a 1970-01-01
const unixEpochSerial = 25569

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FromSerial converte um número serial de planilha (base 1900) em uma data de calendário UTC.
// A parte fracionária (hora do dia) é arredondada para o segundo e descartada no truncamento.
func FromSerial(serial float64) time.Time {
	seconds := math.Round((serial - unixEpochSerial) * 86400)
	instant := time.Unix(int64(seconds), 0).UTC()

	return time.Date(instant.Year(), instant.Month(), instant.Day(), 0, 0, 0, 0, time.UTC)
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

func FirstDayOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
}
