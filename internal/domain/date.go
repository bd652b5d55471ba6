// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/pms-dashboard-api/pkg/utils"
)

// Date representa uma data de calendário (colunas DATE do banco)
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta o horário de t mantendo o dia de calendário
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate aceita YYYY-MM-DD ou RFC 3339
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, fmt.Errorf("data vazia")
	}

	if parsed, err := utils.ParseDate(value); err == nil {
		return DateOf(*parsed), nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: esperado YYYY-MM-DD", value)
	}

	return DateOf(parsed), nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan implementa sql.Scanner
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("tipo não suportado para Date: %T", src)
	}
}

// Value implementa driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
