package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// FilterOp is a comparison operator understood by the backend's list endpoints
type FilterOp string

const (
	OpEq    FilterOp = "="
	OpNeq   FilterOp = "!="
	OpGte   FilterOp = ">="
	OpLte   FilterOp = "<="
	OpGt    FilterOp = ">"
	OpLt    FilterOp = "<"
	OpIn    FilterOp = "IN"
	OpNotIn FilterOp = "NOT IN"
)

// Sort directions; the backend encodes ascending as 1 and descending as -1
const (
	Ascending  = 1
	Descending = -1
)

// Filter constrains a single column. Values holds one entry for scalar
// comparisons and several for set operators like IN; on the wire a
// single-value filter is indistinguishable from a scalar.
type Filter struct {
	Col    string
	Op     FilterOp
	Values []string
}

// Sorter orders results by one column
type Sorter struct {
	Col   string
	Order int
}

// Query describes a list request before wire encoding: pagination, child
// expansion, downsampling, and ordered sort/filter specs.
type Query struct {
	PageNum    int
	PageSize   int
	Children   []string
	DSCols     []string
	DSInterval string
	Sorters    []Sorter
	Filters    []Filter
}

// Encode converts the query into the flat parameter set the backend parses.
// Filters are emitted as three parallel pipe-delimited strings (filter_cols,
// filter_ops, filter_vals) whose positional alignment the backend relies on,
// so entries are never reordered or dropped independently; a filter's own
// value list is semicolon-joined to stay distinguishable from the top-level
// separator. Sorters get the same treatment as sort_col/sort_order. Empty
// lists emit no keys at all. Encoding is pure: the same query always yields
// the same values, and encoding a nil query yields an empty set.
func (q *Query) Encode() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.PageNum > 0 {
		values.Set("page_num", strconv.Itoa(q.PageNum))
	}
	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if len(q.Children) > 0 {
		values.Set("children", strings.Join(q.Children, "|"))
	}
	if len(q.DSCols) > 0 {
		values.Set("ds_cols", strings.Join(q.DSCols, "|"))
	}
	if q.DSInterval != "" {
		values.Set("ds_interval", q.DSInterval)
	}

	q.encodeFilters(values)
	q.encodeSorters(values)

	return values
}

func (q *Query) encodeFilters(values url.Values) {
	if len(q.Filters) == 0 {
		return
	}

	var cols, ops, vals strings.Builder
	for i, f := range q.Filters {
		if i > 0 {
			cols.WriteByte('|')
			ops.WriteByte('|')
			vals.WriteByte('|')
		}
		cols.WriteString(f.Col)
		ops.WriteString(string(f.Op))
		vals.WriteString(strings.Join(f.Values, ";"))
	}

	values.Set("filter_cols", cols.String())
	values.Set("filter_ops", ops.String())
	values.Set("filter_vals", vals.String())
}

func (q *Query) encodeSorters(values url.Values) {
	if len(q.Sorters) == 0 {
		return
	}

	var cols, orders strings.Builder
	for i, s := range q.Sorters {
		if i > 0 {
			cols.WriteByte('|')
			orders.WriteByte('|')
		}
		cols.WriteString(s.Col)
		orders.WriteString(strconv.Itoa(s.Order))
	}

	values.Set("sort_col", cols.String())
	values.Set("sort_order", orders.String())
}

// ParseFilter parses a CLI filter spec of the form "column:op:value", where
// value may be a comma-separated list for set operators
func ParseFilter(spec string) (Filter, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return Filter{}, fmt.Errorf("invalid filter %q, expected column:op:value", spec)
	}

	op := FilterOp(strings.ToUpper(strings.TrimSpace(parts[1])))
	switch op {
	case OpEq, OpNeq, OpGte, OpLte, OpGt, OpLt, OpIn, OpNotIn:
	default:
		return Filter{}, fmt.Errorf("invalid filter operator %q", parts[1])
	}

	return Filter{
		Col:    parts[0],
		Op:     op,
		Values: strings.Split(parts[2], ","),
	}, nil
}

// BuildQuery assembles a query descriptor from CLI-style flag values. A call
// with no paging, filters or sorts returns nil, which encodes to no
// parameters at all.
func BuildQuery(pageNum, pageSize int, filters, sorts []string) (*Query, error) {
	if pageNum == 0 && pageSize == 0 && len(filters) == 0 && len(sorts) == 0 {
		return nil, nil
	}

	q := &Query{PageNum: pageNum, PageSize: pageSize}
	for _, spec := range filters {
		f, err := ParseFilter(spec)
		if err != nil {
			return nil, err
		}
		q.Filters = append(q.Filters, f)
	}
	for _, spec := range sorts {
		s, err := ParseSorter(spec)
		if err != nil {
			return nil, err
		}
		q.Sorters = append(q.Sorters, s)
	}
	return q, nil
}

// ParseSorter parses a CLI sort spec of the form "column", "column:asc" or
// "column:desc"
func ParseSorter(spec string) (Sorter, error) {
	col, dir, found := strings.Cut(spec, ":")
	if col == "" {
		return Sorter{}, fmt.Errorf("invalid sort %q, expected column[:asc|desc]", spec)
	}
	if !found || dir == "asc" {
		return Sorter{Col: col, Order: Ascending}, nil
	}
	if dir == "desc" {
		return Sorter{Col: col, Order: Descending}, nil
	}
	return Sorter{}, fmt.Errorf("invalid sort direction %q", dir)
}
