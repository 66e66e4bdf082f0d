package feedbacking

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vfg2006/forecast-insights-api/internal/domain"
)

// O formato legado embutia sub-métricas no corpo da mensagem como tags
// delimitadas por colchetes, ex.: "[AI Quality: 4.5/5]". O conjunto de tags
// reconhecidas é fechado; qualquer outra coisa é texto livre do usuário.
//
// Este extrator existe como camada de compatibilidade/migração para registros
// legados — o caminho primário de dados são os campos estruturados do
// FeedbackRecord.
var (
	aiQualityPattern = regexp.MustCompile(`\[AI Quality:\s*([0-9]+(?:\.[0-9]+)?)/5\]`)
	chartsPattern    = regexp.MustCompile(`\[Charts:\s*([0-9]+)/5\]`)
	forecastsPattern = regexp.MustCompile(`\[Forecasts:\s*([0-9]+)/5\]`)
	insightsPattern  = regexp.MustCompile(`\[Insights:\s*([0-9]+)/5\]`)
	datasetPattern   = regexp.MustCompile(`\[Dataset:\s*([^\]]+?)\s*\]`)
)

// Submetrics é o resultado da extração. Tags ausentes (ou com sintaxe
// malformada) ficam nulas — nunca assumidas como zero.
type Submetrics struct {
	AIQuality *float64
	Charts    *int
	Forecasts *int
	Insights  *int
	Dataset   *string
}

// ExtractSubmetrics reconhece as tags de sub-métricas embutidas na mensagem e
// devolve também a mensagem limpa, com as tags removidas e os espaços
// colapsados. A extração é tolerante: texto arbitrário do usuário nunca gera
// erro, tags malformadas são simplesmente ignoradas.
func ExtractSubmetrics(message string) (Submetrics, string) {
	var result Submetrics

	if match := aiQualityPattern.FindStringSubmatch(message); match != nil {
		if value, err := strconv.ParseFloat(match[1], 64); err == nil {
			result.AIQuality = &value
		}
	}

	result.Charts = extractIntTag(chartsPattern, message)
	result.Forecasts = extractIntTag(forecastsPattern, message)
	result.Insights = extractIntTag(insightsPattern, message)

	if match := datasetPattern.FindStringSubmatch(message); match != nil {
		value := match[1]
		result.Dataset = &value
	}

	clean := message
	clean = aiQualityPattern.ReplaceAllString(clean, " ")
	clean = chartsPattern.ReplaceAllString(clean, " ")
	clean = forecastsPattern.ReplaceAllString(clean, " ")
	clean = insightsPattern.ReplaceAllString(clean, " ")
	clean = datasetPattern.ReplaceAllString(clean, " ")
	clean = strings.Join(strings.Fields(clean), " ")

	return result, clean
}

func extractIntTag(pattern *regexp.Regexp, message string) *int {
	match := pattern.FindStringSubmatch(message)
	if match == nil {
		return nil
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}

	return &value
}

// ApplyLegacySubmetrics aplica o extrator de compatibilidade a um registro que
// ainda não possui sub-métricas estruturadas, movendo as tags da mensagem para
// os campos dedicados. Registros já estruturados passam intactos.
func ApplyLegacySubmetrics(record *domain.FeedbackRecord) {
	if record == nil || record.HasSubmetrics() {
		return
	}

	submetrics, clean := ExtractSubmetrics(record.Message)

	record.Message = clean
	record.AIQuality = submetrics.AIQuality
	record.ChartQuality = submetrics.Charts
	record.ForecastRating = submetrics.Forecasts
	record.InsightsHelpfulness = submetrics.Insights
	record.Dataset = submetrics.Dataset
}
