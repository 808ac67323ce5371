// Package csvutil decodes the plain comma-delimited roster documents the
// service fetches at startup. The format is deliberately naive: the first
// line is a header, every other line is positional values, and no quoting
// or embedded delimiters are supported. Export goes through pkg/export,
// which is strictly more expressive; the asymmetry is intentional because
// the roster sources never contain quoted fields.
package csvutil

import "strings"

// Row maps a trimmed header name to the trimmed value in that column.
// Headers with no corresponding value in a short line are left unset.
type Row map[string]string

// Parse decodes raw delimited text into field-keyed rows. Lines whose
// every field is empty are dropped. Malformed or empty input yields an
// empty result rather than an error, so callers stay resilient to
// transient empty responses from the roster host.
func Parse(text string) []Row {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := splitTrim(lines[0])
	if len(headers) == 0 {
		return nil
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitTrim(line)
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(values) {
				row[header] = values[i]
			}
		}
		if empty(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func splitTrim(line string) []string {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func empty(row Row) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
