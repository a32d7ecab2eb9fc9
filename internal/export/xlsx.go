package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/zone-enrichment/internal/domain"
)

const sheetName = "Assets"

// WriteXLSX emits the enriched records as a single-sheet workbook with
// the same columns as the CSV output.
func WriteXLSX(w io.Writer, records []domain.EnrichedRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(outputHeader))
	for i, name := range outputHeader {
		header[i] = name
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, rec := range records {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := outputRow(rec)
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(sheetName, cellName, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
