package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// utf8BOM signals the encoding to spreadsheet tools. The exported content
// carries Traditional Chinese labels, which Excel misdetects without it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// CSVExporter renders Dataset records into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderWithBOM produces CSV bytes prefixed with the UTF-8 byte-order marker.
func (e *CSVExporter) RenderWithBOM(data Dataset) ([]byte, error) {
	body, err := e.Render(data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(utf8BOM)+len(body))
	out = append(out, utf8BOM...)
	return append(out, body...), nil
}
