// Package cosing reads the EU COSING ingredient inventory export.
package cosing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	colRefNo       = "COSING Ref No"
	colINCIName    = "INCI name"
	colINNName     = "INN name"
	colDescription = "Chem/IUPAC Name / Description"
	colFunction    = "Function"
	colRestriction = "Restriction"
	colUpdateDate  = "Update Date"
)

var ErrMissingColumn = errors.New("cosing: required column missing")

type Record struct {
	RefNo       int
	INCIName    string
	CommonName  string
	Description string
	Function    string
	Restriction string
	UpdateDate  string
}

type Stats struct {
	Parsed  int `json:"parsed"`
	Skipped int `json:"skipped"`
}

type Options struct {
	// Latin1 decodes the input as ISO-8859-1, which is what the
	// Commission publishes. Set false for UTF-8 re-exports.
	Latin1 bool
}

// Parse streams records from r to fn. Rows without a numeric ref no or an INCI
// name are skipped and counted. An error returned by fn stops parsing.
func Parse(r io.Reader, opts Options, fn func(Record) error) (Stats, error) {
	var stats Stats
	if opts.Latin1 {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return stats, fmt.Errorf("cosing: reading header: %w", err)
	}
	idx := indexColumns(header)
	for _, required := range []string{colRefNo, colINCIName} {
		if _, ok := idx[required]; !ok {
			return stats, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.Skipped++
				continue
			}
			return stats, err
		}

		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		refNo, err := strconv.Atoi(get(colRefNo))
		name := get(colINCIName)
		if err != nil || refNo <= 0 || name == "" {
			stats.Skipped++
			continue
		}

		rec := Record{
			RefNo:       refNo,
			INCIName:    name,
			CommonName:  get(colINNName),
			Description: get(colDescription),
			Function:    get(colFunction),
			Restriction: get(colRestriction),
			UpdateDate:  get(colUpdateDate),
		}
		if err := fn(rec); err != nil {
			return stats, err
		}
		stats.Parsed++
	}
}

func indexColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}
