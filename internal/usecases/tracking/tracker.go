package tracking

import (
	"math"
	"time"

	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

// DaysUntilTarget calcula a diferença em dias inteiros entre a data alvo e o
// instante de referência, com sinal (negativo = atrasada). O arredondamento é
// sempre para baixo, inclusive para diferenças negativas.
func DaysUntilTarget(targetDate, now time.Time) int {
	return int(math.Floor(targetDate.Sub(now).Hours() / 24))
}

// ClassifyUrgency aplica a banda fixa de urgência sobre os dias restantes.
// As contagens de "Urgent" e "Overdue" do dashboard dependem exatamente
// desses limites.
func ClassifyUrgency(daysUntilTarget, thresholdDays int) domain.Urgency {
	switch {
	case daysUntilTarget < 0:
		return domain.UrgencyOverdue
	case daysUntilTarget <= thresholdDays:
		return domain.UrgencyUrgent
	default:
		return domain.UrgencyUpcoming
	}
}
