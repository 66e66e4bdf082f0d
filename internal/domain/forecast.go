package domain

import (
	"time"
)

// ForecastType identifica a natureza da previsão gerada pelo motor externo
type ForecastType string

const (
	ForecastTypeSales    ForecastType = "sales"
	ForecastTypeQuantity ForecastType = "quantity"
	ForecastTypeStock    ForecastType = "stock"
	ForecastTypeCashFlow ForecastType = "cash_flow"
)

// ForecastTypes lista todos os tipos válidos de previsão
var ForecastTypes = []ForecastType{
	ForecastTypeSales,
	ForecastTypeQuantity,
	ForecastTypeStock,
	ForecastTypeCashFlow,
}

// IsValid verifica se o tipo de previsão pertence à enumeração conhecida
func (t ForecastType) IsValid() bool {
	for _, known := range ForecastTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ForecastStatus representa o estado do ciclo de vida de uma previsão
type ForecastStatus string

const (
	ForecastStatusPending   ForecastStatus = "pending"
	ForecastStatusCompleted ForecastStatus = "completed"
)

// ForecastRecord representa uma previsão produzida pelo colaborador externo.
// Os campos ActualValue, Accuracy e MAPE são preenchidos juntos no momento da
// resolução e nunca separadamente.
type ForecastRecord struct {
	ID             string         `json:"id"`
	Type           ForecastType   `json:"forecast_type"`
	Domain         string         `json:"domain"`
	PredictedValue float64        `json:"predicted_value"`
	PredictedLower *float64       `json:"predicted_lower,omitempty"`
	PredictedUpper *float64       `json:"predicted_upper,omitempty"`
	ActualValue    *float64       `json:"actual_value,omitempty"`
	ForecastDate   time.Time      `json:"forecast_date"`
	TargetDate     time.Time      `json:"target_date"`
	Status         ForecastStatus `json:"status"`
	Accuracy       *float64       `json:"accuracy,omitempty"`
	MAPE           *float64       `json:"mape,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsCompleted indica se a previsão já foi resolvida
func (f *ForecastRecord) IsCompleted() bool {
	return f.Status == ForecastStatusCompleted
}

// ResolutionResult é o retorno da operação de resolução de uma previsão.
// Accuracy e MAPE ficam nulos quando o valor real é zero (métrica não aplicável).
type ResolutionResult struct {
	ForecastID    string   `json:"forecast_id"`
	AbsoluteError float64  `json:"absolute_error"`
	Accuracy      *float64 `json:"accuracy"`
	MAPE          *float64 `json:"mape"`
}

// Urgency classifica a proximidade da data alvo de uma previsão pendente
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyUpcoming Urgency = "upcoming"
)

// PendingForecast é a visão de exibição de uma previsão pendente, com os
// campos derivados calculados pelo rastreador de ciclo de vida
type PendingForecast struct {
	*ForecastRecord
	DaysUntilTarget int     `json:"days_until_target"`
	Urgency         Urgency `json:"urgency"`
}
