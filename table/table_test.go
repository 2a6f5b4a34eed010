package table

import (
	"testing"
)

func TestNormalizeColumn(t *testing.T) {
	cases := map[string]string{
		"  Restaurant ID ":     "restaurant_id",
		"City":                 "city",
		"Average Cost for Two": "average_cost_for_two",
		"aggregate_rating":     "aggregate_rating",
	}
	for in, want := range cases {
		got := NormalizeColumn(in)
		if got != want {
			t.Fatalf("NormalizeColumn(%q) = %q, want %q", in, got, want)
		}
		// normalization is stable under repetition
		if NormalizeColumn(got) != got {
			t.Fatalf("NormalizeColumn not idempotent for %q", got)
		}
	}
}

func TestDuplicateColumn(t *testing.T) {
	_, err := New([]string{"city", "city"})
	if err == nil {
		t.Fatal("expected duplicate column error")
	}
}

func TestSelectPreservesOrder(t *testing.T) {
	tbl, err := New([]string{"city"})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []string{"A", "B", "C", "D"} {
		if err := tbl.AppendRow(Row{Text(c)}); err != nil {
			t.Fatal(err)
		}
	}

	sub := tbl.Select([]int{0, 2})
	if sub.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", sub.NumRows())
	}
	if sub.ValueNamed(0, "city").Text != "A" || sub.ValueNamed(1, "city").Text != "C" {
		t.Fatal("Select did not preserve row order")
	}
	if tbl.NumRows() != 4 {
		t.Fatal("Select mutated the parent table")
	}
}

func TestDistinctValuesFirstOccurrence(t *testing.T) {
	tbl, err := New([]string{"city"})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []string{"B", "A", "B", "C"} {
		tbl.AppendRow(Row{Text(c)})
	}
	tbl.AppendRow(Row{Missing()})

	got := tbl.DistinctValues("city")
	want := []string{"B", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if tbl.DistinctValues("nope") != nil {
		t.Fatal("expected nil for absent column")
	}
}

func TestColumnTypes(t *testing.T) {
	tbl, err := New([]string{"name", "rating", "empty"})
	if err != nil {
		t.Fatal(err)
	}
	tbl.AppendRow(Row{Text("a"), Number(4), Missing()})
	tbl.AppendRow(Row{Missing(), Number(3.5), Missing()})

	types := tbl.ColumnTypes()
	want := map[string]string{"name": "text", "rating": "number", "empty": "unknown"}
	for _, ct := range types {
		if want[ct.Name] != ct.Type {
			t.Fatalf("column %s: got type %s, want %s", ct.Name, ct.Type, want[ct.Name])
		}
	}
}

func TestValueDisplay(t *testing.T) {
	if Number(3.50).Display() != "3.5" {
		t.Fatalf("got %q", Number(3.50).Display())
	}
	if Number(2).Display() != "2" {
		t.Fatalf("got %q", Number(2).Display())
	}
	if Missing().Display() != "" {
		t.Fatal("missing should display empty")
	}
}
