package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/retarch/retarch/internal/domain"
)

// CSVFormatter emits the projection series, one row per year.
type CSVFormatter struct{}

func (f CSVFormatter) Name() string { return "csv" }

func (f CSVFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "CalendarYear", "Age", "RRSPBalance", "TFSABalance", "TotalWealth", "PurchasingPower"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, state := range result.Projection {
		row := []string{
			strconv.Itoa(state.YearIndex),
			strconv.Itoa(state.CalendarYear),
			strconv.Itoa(state.Age),
			state.DeferredBalance.StringFixed(2),
			state.ExemptBalance.StringFixed(2),
			state.TotalWealth.StringFixed(2),
			state.PurchasingPower.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
