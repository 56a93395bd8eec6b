// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFile reads a survey CSV from disk.
func LoadFile(path string, major []string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Source: path, Reason: "cannot open file", Err: err}
	}
	defer f.Close()

	store, err := LoadTable(f, path, major)
	if err != nil {
		return nil, err
	}

	if info, err := f.Stat(); err == nil {
		store.sizeBytes = info.Size()
	}
	return store, nil
}

// LoadTable parses a survey CSV. The header must contain Name and every
// major region. Empty cells are recorded as missing values.
func LoadTable(r io.Reader, source string, major []string) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &DataLoadError{Source: source, Reason: "empty input"}
	}
	if err != nil {
		return nil, &DataLoadError{Source: source, Reason: "failed to read CSV header", Err: err}
	}
	header = normalizeHeader(header)

	nameIdx := -1
	columns := make([]string, 0, len(header))
	for i, h := range header {
		if h == NameColumn && nameIdx < 0 {
			nameIdx = i
			continue
		}
		columns = append(columns, h)
	}
	if nameIdx < 0 {
		return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("missing required column %q", NameColumn)}
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("line %d", line), Err: err}
		}
		if nameIdx >= len(record) {
			return nil, &DataLoadError{Source: source, Reason: fmt.Sprintf("line %d has no Name", line)}
		}

		row := Row{
			Name:    strings.TrimSpace(record[nameIdx]),
			Support: make(map[string]float64, len(columns)),
		}
		for i, val := range record {
			if i == nameIdx || i >= len(header) {
				continue
			}
			val = strings.TrimSpace(val)
			if val == "" {
				continue
			}
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, &DataLoadError{
					Source: source,
					Reason: fmt.Sprintf("line %d: column %q is not a number", line, header[i]),
					Err:    err,
				}
			}
			row.Support[header[i]] = f
		}
		rows = append(rows, row)
	}

	return NewStore(source, columns, rows, major)
}

// normalizeHeader trims names and renames repeated columns to "X.1",
// "X.2", ... so secondary copies carry the duplicate marker.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if n := seen[h]; n > 0 {
			seen[h] = n + 1
			h = fmt.Sprintf("%s.%d", h, n)
		} else {
			seen[h] = 1
		}
		out[i] = h
	}
	return out
}
