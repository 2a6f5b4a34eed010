package cleaning

import (
	"strings"
	"testing"

	"github.com/tastedash/tastedash/loader"
	"github.com/tastedash/tastedash/table"
)

func parseCSV(t *testing.T, data string) *table.Table {
	t.Helper()
	tbl, err := loader.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestDedupeStable(t *testing.T) {
	tbl := parseCSV(t, "Restaurant ID,City\n1,Delhi\n2,Pune\n1,Mumbai\n3,Goa\n")
	out := Clean(tbl, Config{KeyColumn: "restaurant_id"})

	if out.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", out.NumRows())
	}
	// first-seen row for key 1 survives
	if out.ValueNamed(0, "city").Text != "Delhi" {
		t.Fatalf("expected first-seen row kept, got %q", out.ValueNamed(0, "city").Text)
	}
	if out.ValueNamed(1, "city").Text != "Pune" || out.ValueNamed(2, "city").Text != "Goa" {
		t.Fatal("dedup did not preserve order")
	}
}

func TestDropMissingRequired(t *testing.T) {
	tbl := parseCSV(t, "City,Aggregate Rating\nA,4.0\nA,\nB,3.0\n")
	out := Clean(tbl, Config{RequiredColumns: []string{"city", "aggregate_rating"}})

	if out.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", out.NumRows())
	}
	if out.ValueNamed(0, "aggregate_rating").Num != 4.0 || out.ValueNamed(1, "aggregate_rating").Num != 3.0 {
		t.Fatal("wrong rows survived cleaning")
	}
}

func TestAbsentColumnsIgnored(t *testing.T) {
	tbl := parseCSV(t, "name\nx\ny\n")
	out := Clean(tbl, DefaultConfig())
	if out.NumRows() != 2 {
		t.Fatalf("expected cleaning to be a no-op, got %d rows", out.NumRows())
	}
}

func TestCleanIdempotent(t *testing.T) {
	tbl := parseCSV(t, "Restaurant ID,City,Cuisines,Aggregate Rating\n1,Delhi,North Indian,4.0\n1,Delhi,North Indian,4.0\n2,Pune,,3.0\n3,Goa,Seafood,\n")
	cfg := DefaultConfig()

	once := Clean(tbl, cfg)
	twice := Clean(once, cfg)

	if once.NumRows() != 1 {
		t.Fatalf("expected 1 row after clean, got %d", once.NumRows())
	}
	if twice.NumRows() != once.NumRows() {
		t.Fatal("clean is not idempotent")
	}
}

func TestEmptyResultValid(t *testing.T) {
	tbl := parseCSV(t, "City,Cuisines,Aggregate Rating\n,,\n")
	out := Clean(tbl, DefaultConfig())
	if out.NumRows() != 0 {
		t.Fatalf("expected 0 rows, got %d", out.NumRows())
	}
}
