// Package export reads the uploaded assets table and serializes the
// enriched output as CSV or XLSX.
package export

import (
	"encoding/csv"
	"io"

	"github.com/zone-enrichment/internal/domain"
	"github.com/zone-enrichment/internal/pkg/errors"
)

// Columns names the four input columns the enrichment needs.
type Columns struct {
	AssetName string
	Lat       string
	Long      string
	Sector    string
}

// outputHeader is the fixed column set of the enriched file.
var outputHeader = []string{"Asset Name", "Lat", "Long", "Sector", "Zone", "Freguesia"}

// ReadAssets parses the uploaded CSV into asset records. The header must
// contain all four configured columns; a missing column is a request
// error naming the column. Cell values stay raw strings, coordinate
// parsing happens later per row.
func ReadAssets(r io.Reader, cols Columns) ([]domain.AssetRecord, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.ErrInvalidAssetsFile
	}

	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[name] = i
	}

	indexes := make([]int, 0, 4)
	for _, col := range []string{cols.AssetName, cols.Lat, cols.Long, cols.Sector} {
		idx, ok := byName[col]
		if !ok {
			return nil, errors.NewMissingColumn(col)
		}
		indexes = append(indexes, idx)
	}

	var records []domain.AssetRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.ErrInvalidAssetsFile
		}
		records = append(records, domain.AssetRecord{
			Name:   cell(row, indexes[0]),
			Lat:    cell(row, indexes[1]),
			Long:   cell(row, indexes[2]),
			Sector: cell(row, indexes[3]),
		})
	}
	return records, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// WriteCSV emits the enriched records with the fixed output header. Nil
// labels become empty cells.
func WriteCSV(w io.Writer, records []domain.EnrichedRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(outputHeader); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writer.Write(outputRow(rec)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func outputRow(rec domain.EnrichedRecord) []string {
	return []string{
		rec.Name,
		rec.Lat,
		rec.Long,
		rec.Sector,
		deref(rec.Zone),
		deref(rec.Freguesia),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
