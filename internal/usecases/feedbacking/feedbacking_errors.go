package feedbacking

import (
	"errors"
)

// Erros específicos para o contexto de feedback
var (
	// Erros de validação
	ErrInvalidRating       = errors.New("rating must be an integer between 1 and 5")
	ErrInvalidFeedbackType = errors.New("unknown feedback type")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)
