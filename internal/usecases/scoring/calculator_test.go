package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name             string
		predicted        float64
		actual           float64
		expectedError    float64
		expectedMAPE     *float64
		expectedAccuracy *float64
		hasError         bool
	}{
		{
			name:             "Previsão exata deve retornar acurácia 100",
			predicted:        100,
			actual:           100,
			expectedError:    0,
			expectedMAPE:     floatPtr(0),
			expectedAccuracy: floatPtr(100),
		},
		{
			name:             "Erro de 10% deve retornar acurácia 90",
			predicted:        90,
			actual:           100,
			expectedError:    10,
			expectedMAPE:     floatPtr(10),
			expectedAccuracy: floatPtr(90),
		},
		{
			name:             "Previsão acima do real também conta como erro",
			predicted:        110,
			actual:           100,
			expectedError:    10,
			expectedMAPE:     floatPtr(10),
			expectedAccuracy: floatPtr(90),
		},
		{
			name:             "Erro maior que 100% deve travar a acurácia em zero, nunca negativa",
			predicted:        300,
			actual:           100,
			expectedError:    200,
			expectedMAPE:     floatPtr(200),
			expectedAccuracy: floatPtr(0),
		},
		{
			name:          "Valor real zero deve deixar MAPE e acurácia nulos (não aplicável)",
			predicted:     50,
			actual:        0,
			expectedError: 50,
		},
		{
			name:             "Valores negativos usam o módulo do valor real",
			predicted:        -90,
			actual:           -100,
			expectedError:    10,
			expectedMAPE:     floatPtr(10),
			expectedAccuracy: floatPtr(90),
		},
		{
			name:      "Valor previsto NaN deve retornar erro de medição inválida",
			predicted: math.NaN(),
			actual:    100,
			hasError:  true,
		},
		{
			name:      "Valor real infinito deve retornar erro de medição inválida",
			predicted: 100,
			actual:    math.Inf(1),
			hasError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := Calculate(tt.predicted, tt.actual)

			if tt.hasError {
				assert.ErrorIs(t, err, ErrInvalidMeasurement)
				assert.Nil(t, score)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedError, score.AbsoluteError)

			if tt.expectedMAPE == nil {
				assert.Nil(t, score.MAPE)
				assert.Nil(t, score.Accuracy)
			} else {
				assert.NotNil(t, score.MAPE)
				assert.NotNil(t, score.Accuracy)
				assert.InDelta(t, *tt.expectedMAPE, *score.MAPE, 1e-9)
				assert.InDelta(t, *tt.expectedAccuracy, *score.Accuracy, 1e-9)
			}
		})
	}
}

func TestCalculate_AccuracyDecreasesWithError(t *testing.T) {
	// A acurácia deve cair monotonicamente conforme a previsão se afasta do real
	actual := 100.0
	previous := 101.0

	for _, predicted := range []float64{100, 95, 80, 50, 10} {
		score, err := Calculate(predicted, actual)
		assert.NoError(t, err)
		assert.NotNil(t, score.Accuracy)
		assert.Less(t, *score.Accuracy, previous)
		assert.GreaterOrEqual(t, *score.Accuracy, 0.0)
		assert.LessOrEqual(t, *score.Accuracy, 100.0)
		previous = *score.Accuracy
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
