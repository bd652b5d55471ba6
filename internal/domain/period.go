package domain

import (
	"time"

	"github.com/vfg2006/pms-dashboard-api/pkg/utils"
)

// Period é um intervalo semiaberto [From, To) de datas de calendário
type Period struct {
	From time.Time
	To   time.Time
}

// CurrentYear retorna o ano de calendário corrente em relação a now
func CurrentYear(now time.Time) Period {
	from := utils.FirstDayOfYear(now)
	return Period{From: from, To: from.AddDate(1, 0, 0)}
}

// PreviousMonth retorna o mês de calendário anterior ao de now
func PreviousMonth(now time.Time) Period {
	to := utils.FirstDayOfMonth(now)
	return Period{From: to.AddDate(0, -1, 0), To: to}
}
