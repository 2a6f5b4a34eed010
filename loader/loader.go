package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tastedash/tastedash/table"
	"github.com/tastedash/tastedash/utils"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrNoHeader        = utils.PermError("dataset has no header row")
	ErrUnknownEncoding = utils.PermError("unknown dataset encoding")
)

// LoadError is the single fatal error class of the pipeline: the dataset
// was missing, unreadable, undecodable, or had a malformed row shape.
// It is permanent — callers must not retry.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading dataset from %s: %s", e.Source, e.Err.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) IsPermanent() bool {
	return true
}

// DecodeReader wraps r so that the named text encoding is transparently
// decoded to UTF-8. An empty name means the input is already UTF-8.
func DecodeReader(r io.Reader, encodingName string) (io.Reader, error) {
	switch strings.ToLower(encodingName) {
	case "", "utf8", "utf-8":
		return r, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	default:
		return nil, fmt.Errorf("'%s': %w", encodingName, ErrUnknownEncoding)
	}
}

// Parse reads a delimited dataset with a header row into a Table. Column
// names are normalized here, exactly once. Cells parse as: empty →
// missing, numeric → number, anything else → text. A row whose field
// count differs from the header is a malformed shape and fails the load.
func Parse(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header row: %w", err)
	}

	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = table.NormalizeColumn(h)
	}

	t, err := table.New(cols)
	if err != nil {
		return nil, fmt.Errorf("error in table.New: %w", err)
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// includes csv.ErrFieldCount for ragged rows
			return nil, fmt.Errorf("error reading row: %w", err)
		}

		row := make(table.Row, len(rec))
		for i, cell := range rec {
			row[i] = parseCell(cell)
		}
		if err := t.AppendRow(row); err != nil {
			return nil, fmt.Errorf("error in AppendRow: %w", err)
		}
	}

	return t, nil
}

func parseCell(cell string) table.Value {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return table.Missing()
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return table.Number(f)
	}
	return table.Text(cell)
}
