package output

import (
	"github.com/goccy/go-json"
	"github.com/sasusim/remuneration-simulator/internal/domain"
)

// JSONFormatter serializes results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

func (j JSONFormatter) FormatOptimization(result *domain.OptimizationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
