package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/tastedash/tastedash/table"
)

func TestParse(t *testing.T) {
	csvData := " Restaurant ID ,City,Aggregate Rating\n1,Delhi,4.1\n2,Pune,\n"
	tbl, err := Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}

	if !tbl.HasColumns("restaurant_id", "city", "aggregate_rating") {
		t.Fatalf("unexpected columns: %v", tbl.Columns())
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.NumRows())
	}

	v := tbl.ValueNamed(0, "aggregate_rating")
	if v.Kind != table.KindNumber || v.Num != 4.1 {
		t.Fatalf("expected number 4.1, got %+v", v)
	}
	if tbl.ValueNamed(0, "city").Kind != table.KindText {
		t.Fatal("expected city to parse as text")
	}
	if !tbl.ValueNamed(1, "aggregate_rating").IsMissing() {
		t.Fatal("expected empty cell to be missing")
	}
}

func TestParseRaggedRow(t *testing.T) {
	csvData := "a,b\n1,2\n3\n"
	_, err := Parse(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected malformed row error")
	}
}

func TestParseNoHeader(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader, got %v", err)
	}
}

func TestDecodeLatin1(t *testing.T) {
	// "Café,Delhi" with é encoded as latin1 0xE9
	raw := "Restaurant Name,City\nCaf\xe9,Delhi\n"
	decoded, err := DecodeReader(strings.NewReader(raw), "latin1")
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := Parse(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.ValueNamed(0, "restaurant_name").Text; got != "Café" {
		t.Fatalf("expected Café, got %q", got)
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := DecodeReader(strings.NewReader(""), "ebcdic")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestLoadErrorPermanent(t *testing.T) {
	le := &LoadError{Source: "file://x.csv", Err: ErrNoHeader}
	if !le.IsPermanent() {
		t.Fatal("LoadError must be permanent")
	}
	if !errors.Is(le, ErrNoHeader) {
		t.Fatal("LoadError should unwrap to cause")
	}
}
