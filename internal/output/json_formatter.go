package output

import (
	"encoding/json"

	"github.com/retarch/retarch/internal/domain"
)

// JSONFormatter emits the whole scenario result as JSON.
type JSONFormatter struct {
	Pretty bool
}

func (f JSONFormatter) Name() string { return "json" }

func (f JSONFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	if f.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
