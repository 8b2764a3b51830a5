package quiz

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
)

// ExportCSV экспортирует разбор результата в CSV.
func ExportCSV(result *Result) ([]byte, error) {
	if result == nil {
		return nil, errors.New("result object is nil")
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	_ = w.Write(
		[]string{
			"Position",
			"Question",
			"Selected",
			"Correct",
			"IsCorrect",
			"Explanation",
		},
	)

	for _, item := range result.Breakdown {
		_ = w.Write([]string{
			strconv.Itoa(item.Position + 1),
			item.Text,
			item.SelectedText,
			item.CorrectText,
			strconv.FormatBool(item.IsCorrect),
			item.Explanation,
		})
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush buffer: %w", err)
	}

	return buf.Bytes(), nil
}
