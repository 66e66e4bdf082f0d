package scoring

import (
	"math"
)

// Score agrupa as métricas de qualidade de uma previsão resolvida.
// MAPE e Accuracy ficam nulos quando o valor real é zero: a métrica é
// "não aplicável" e precisa ser excluída das médias, nunca tratada como zero.
type Score struct {
	AbsoluteError float64
	MAPE          *float64
	Accuracy      *float64
}

// Calculate compara o valor previsto com o valor real e produz as métricas
// de erro e acurácia. Função pura, sem efeitos colaterais.
//
// Retorna ErrInvalidMeasurement quando qualquer um dos valores não é um
// número finito; quem chama decide entre pular o registro ou abortar.
func Calculate(predicted, actual float64) (*Score, error) {
	if !isFinite(predicted) || !isFinite(actual) {
		return nil, ErrInvalidMeasurement
	}

	score := &Score{
		AbsoluteError: math.Abs(actual - predicted),
	}

	// Divisão por zero: MAPE indefinido, acurácia não aplicável
	if actual == 0 {
		return score, nil
	}

	mape := (score.AbsoluteError / math.Abs(actual)) * 100
	accuracy := math.Max(0, 100-mape)

	score.MAPE = &mape
	score.Accuracy = &accuracy

	return score, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
