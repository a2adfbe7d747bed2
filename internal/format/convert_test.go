package format

import (
	"testing"

	"github.com/soukonline/cli/internal/models"
)

func TestNormalizeRows(t *testing.T) {
	parent := "c0"
	rows, ok := normalizeRows([]models.Category{
		{ID: "c1", Name: "Shoes", ParentCategory: &parent, Attributes: []string{"size"}},
		{ID: "c2", Name: "Books"},
	})
	if !ok {
		t.Fatal("expected a slice to normalize")
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["_id"] != "c1" || rows[0]["name"] != "Shoes" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if rows[0]["parentCategory"] != "c0" {
		t.Errorf("pointer field lost: %v", rows[0])
	}
}

func TestNormalizeRowsRejectsScalar(t *testing.T) {
	if _, ok := normalizeRows("just a string"); ok {
		t.Error("a scalar must not normalize into rows")
	}
	if _, ok := normalizeRows(models.Category{ID: "c1"}); ok {
		t.Error("a single record must not normalize into rows")
	}
}

func TestNormalizeRecord(t *testing.T) {
	record, ok := normalizeRecord(models.Product{ID: "p1", Name: "Desk", IsAvailable: true})
	if !ok {
		t.Fatal("expected a struct to normalize")
	}
	if record["_id"] != "p1" || record["name"] != "Desk" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestFormatHeader(t *testing.T) {
	f := NewTableFormatter(false)
	tests := map[string]string{
		"_id":          "Id",
		"name":         "Name",
		"created_at":   "Created At",
		"total_count":  "Total Count",
		"is_available": "Is Available",
	}
	for in, want := range tests {
		if got := f.formatHeader(in); got != want {
			t.Errorf("formatHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	f := NewTableFormatter(false)
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{true, "yes"},
		{false, "no"},
		{float64(42), "42"},
		{12.5, "12.5"},
		{"plain", "plain"},
		{[]interface{}{"a", "b"}, "a, b"},
	}
	for _, tt := range tests {
		if got := f.formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatValueTruncates(t *testing.T) {
	f := NewTableFormatter(false)
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	got := f.formatValue(string(long))
	if len(got) != 60 {
		t.Errorf("truncated to %d characters, want 60", len(got))
	}
	if got[57:] != "..." {
		t.Errorf("missing ellipsis: %q", got)
	}
}
