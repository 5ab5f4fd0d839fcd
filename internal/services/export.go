package services

import (
	"bytes"
	"cost-intelligence-service/internal/domain"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ExportFileName is the download name of the detailed cost report.
const ExportFileName = "nexgen_cost_analysis_report.csv"

// WriteCSV writes the filtered enriched table: a header row, then one row per
// record. An undefined cost per km is written as an empty cell.
func WriteCSV(w io.Writer, rep *domain.Report) error {
	if rep == nil {
		return errors.New("write csv: report is nil")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rep.Columns); err != nil {
		return fmt.Errorf("write csv: header: %w", err)
	}

	for _, r := range rep.Records {
		cpk := ""
		if r.HasCostPerDistance {
			cpk = r.CostPerDistance.String()
		}

		row := make([]string, 0, len(r.Values)+2)
		row = append(row, r.Values...)
		row = append(row, r.TotalCost.String(), cpk)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv: order %q: %w", r.OrderID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: flush: %w", err)
	}
	return nil
}

// ExportCSV returns the CSV export as a byte payload.
func ExportCSV(rep *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rep); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
