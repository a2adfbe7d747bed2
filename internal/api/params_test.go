package api

import (
	"reflect"
	"testing"
)

func TestEncodeNilQuery(t *testing.T) {
	var q *Query
	values := q.Encode()
	if len(values) != 0 {
		t.Errorf("expected no parameters for nil query, got %v", values)
	}
}

func TestEncodeEmptyQuery(t *testing.T) {
	values := (&Query{}).Encode()
	if len(values) != 0 {
		t.Errorf("expected no parameters for empty query, got %v", values)
	}
	for _, key := range []string{"filter_cols", "filter_ops", "filter_vals", "sort_col", "sort_order"} {
		if _, ok := values[key]; ok {
			t.Errorf("empty query must not emit %s", key)
		}
	}
}

func TestEncodeIdempotent(t *testing.T) {
	q := &Query{
		PageNum:  2,
		PageSize: 50,
		Children: []string{"categories", "products"},
		Filters: []Filter{
			{Col: "status", Op: OpEq, Values: []string{"pending"}},
			{Col: "price", Op: OpGte, Values: []string{"10"}},
		},
		Sorters: []Sorter{{Col: "name", Order: Ascending}},
	}

	first := q.Encode()
	second := q.Encode()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("encoding is not idempotent:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestEncodeFilterOrdering(t *testing.T) {
	q := &Query{
		Filters: []Filter{
			{Col: "a", Op: OpEq, Values: []string{"1"}},
			{Col: "b", Op: OpGt, Values: []string{"2"}},
		},
	}

	values := q.Encode()
	if got := values.Get("filter_cols"); got != "a|b" {
		t.Errorf("filter_cols = %q, want %q", got, "a|b")
	}
	if got := values.Get("filter_ops"); got != "=|>" {
		t.Errorf("filter_ops = %q, want %q", got, "=|>")
	}
	if got := values.Get("filter_vals"); got != "1|2" {
		t.Errorf("filter_vals = %q, want %q", got, "1|2")
	}
}

func TestEncodeMultiValueFilter(t *testing.T) {
	q := &Query{
		Filters: []Filter{
			{Col: "a", Op: OpIn, Values: []string{"1", "2", "3"}},
		},
	}

	values := q.Encode()
	if got := values.Get("filter_vals"); got != "1;2;3" {
		t.Errorf("filter_vals = %q, want %q", got, "1;2;3")
	}
	if got := values.Get("filter_cols"); got != "a" {
		t.Errorf("filter_cols = %q, want %q", got, "a")
	}
}

func TestEncodeMultiValueAmongOthers(t *testing.T) {
	q := &Query{
		Filters: []Filter{
			{Col: "a", Op: OpIn, Values: []string{"1", "2"}},
			{Col: "b", Op: OpEq, Values: []string{"x"}},
		},
	}

	values := q.Encode()
	if got := values.Get("filter_vals"); got != "1;2|x" {
		t.Errorf("filter_vals = %q, want %q", got, "1;2|x")
	}
}

func TestEncodeSingleSorter(t *testing.T) {
	q := &Query{
		Sorters: []Sorter{{Col: "name", Order: Descending}},
	}

	values := q.Encode()
	if got := values.Get("sort_col"); got != "name" {
		t.Errorf("sort_col = %q, want %q", got, "name")
	}
	if got := values.Get("sort_order"); got != "-1" {
		t.Errorf("sort_order = %q, want %q", got, "-1")
	}
}

func TestEncodeSorterOrdering(t *testing.T) {
	q := &Query{
		Sorters: []Sorter{
			{Col: "name", Order: Ascending},
			{Col: "createdAt", Order: Descending},
		},
	}

	values := q.Encode()
	if got := values.Get("sort_col"); got != "name|createdAt" {
		t.Errorf("sort_col = %q, want %q", got, "name|createdAt")
	}
	if got := values.Get("sort_order"); got != "1|-1" {
		t.Errorf("sort_order = %q, want %q", got, "1|-1")
	}
}

func TestEncodeSimpleFields(t *testing.T) {
	q := &Query{
		PageNum:    3,
		PageSize:   25,
		Children:   []string{"categories", "products"},
		DSCols:     []string{"price", "stock"},
		DSInterval: "1d",
	}

	values := q.Encode()
	cases := map[string]string{
		"page_num":    "3",
		"page_size":   "25",
		"children":    "categories|products",
		"ds_cols":     "price|stock",
		"ds_interval": "1d",
	}
	for key, want := range cases {
		if got := values.Get(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		spec    string
		want    Filter
		wantErr bool
	}{
		{spec: "status:=:pending", want: Filter{Col: "status", Op: OpEq, Values: []string{"pending"}}},
		{spec: "price:>=:100", want: Filter{Col: "price", Op: OpGte, Values: []string{"100"}}},
		{spec: "status:in:pending,completed", want: Filter{Col: "status", Op: OpIn, Values: []string{"pending", "completed"}}},
		{spec: "nocolon", wantErr: true},
		{spec: "a:~:b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFilter(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFilter(%q): expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFilter(%q): unexpected error: %v", tt.spec, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseFilter(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseSorter(t *testing.T) {
	tests := []struct {
		spec    string
		want    Sorter
		wantErr bool
	}{
		{spec: "name", want: Sorter{Col: "name", Order: Ascending}},
		{spec: "name:asc", want: Sorter{Col: "name", Order: Ascending}},
		{spec: "name:desc", want: Sorter{Col: "name", Order: Descending}},
		{spec: ":asc", wantErr: true},
		{spec: "name:sideways", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSorter(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSorter(%q): expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSorter(%q): unexpected error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSorter(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestBuildQueryEmpty(t *testing.T) {
	q, err := BuildQuery(0, 0, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != nil {
		t.Errorf("expected nil query for no flags, got %+v", q)
	}
}

func TestBuildQueryInvalidFilter(t *testing.T) {
	if _, err := BuildQuery(1, 10, []string{"broken"}, nil); err == nil {
		t.Error("expected error for invalid filter spec")
	}
}
