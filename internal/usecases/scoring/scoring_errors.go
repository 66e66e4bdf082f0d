package scoring

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pontuação de previsões
var (
	// Erros de validação
	ErrInvalidMeasurement = errors.New("predicted or actual value is not a finite number")
	ErrForecastIDRequired = errors.New("forecast ID is required")

	// Erros estruturais da operação de resolução
	ErrForecastNotFound = errors.New("forecast not found")
	ErrAlreadyResolved  = errors.New("forecast already resolved")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// ScoringError é um erro com contexto adicional para a resolução de previsões
type ScoringError struct {
	Err        error  // Erro base
	ForecastID string // ID da previsão envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ScoringError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ScoringError) Unwrap() error {
	return e.Err
}

// NewScoringError cria um novo ScoringError com o ID da previsão
func NewScoringError(err error, forecastID string, details string) *ScoringError {
	return &ScoringError{
		Err:        err,
		ForecastID: forecastID,
		Details:    details,
	}
}
