package format

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter handles table output formatting
type TableFormatter struct {
	useColors bool
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(useColors bool) *TableFormatter {
	return &TableFormatter{
		useColors: useColors,
	}
}

// Format formats data as a table
func (f *TableFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Println("No data to display")
		return nil
	}

	if rows, ok := normalizeRows(data); ok {
		return f.formatRows(rows)
	}
	if record, ok := normalizeRecord(data); ok {
		return f.formatRecord(record)
	}

	fmt.Printf("%v\n", data)
	return nil
}

// formatRows renders a collection as one table row per item
func (f *TableFormatter) formatRows(rows []map[string]interface{}) error {
	if len(rows) == 0 {
		fmt.Println("No data to display")
		return nil
	}

	// Stable column order: keys of the first row, sorted
	keys := make([]string, 0, len(rows[0]))
	for key := range rows[0] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make([]string, len(keys))
	for i, key := range keys {
		headers[i] = f.formatHeader(key)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	f.configureTable(table)

	for _, row := range rows {
		values := make([]string, len(keys))
		for i, key := range keys {
			values[i] = f.formatValue(row[key])
		}
		table.Append(values)
	}

	table.Render()
	return nil
}

// formatRecord renders a single item as a vertical property table
func (f *TableFormatter) formatRecord(record map[string]interface{}) error {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Property", "Value"})
	f.configureTable(table)

	for _, key := range keys {
		table.Append([]string{
			f.formatHeader(key),
			f.formatValue(record[key]),
		})
	}

	table.Render()
	return nil
}

// configureTable sets shared table appearance
func (f *TableFormatter) configureTable(table *tablewriter.Table) {
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
}

// formatHeader turns a field name into a display header
func (f *TableFormatter) formatHeader(key string) string {
	key = strings.TrimPrefix(key, "_")
	words := strings.Split(key, "_")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

// formatValue renders a cell value
func (f *TableFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return truncate(v, 60)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = f.formatValue(item)
		}
		return truncate(strings.Join(parts, ", "), 60)
	case map[string]interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return truncate(string(raw), 60)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// truncate shortens long cell values for readable tables
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
