package format

import (
	"fmt"
	"sort"
	"strings"
)

// TextFormatter handles simple text output formatting
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats data as simple text
func (f *TextFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Println("No data")
		return nil
	}

	if s, ok := data.(string); ok {
		fmt.Println(s)
		return nil
	}

	if rows, ok := normalizeRows(data); ok {
		if len(rows) == 0 {
			fmt.Println("No data")
			return nil
		}
		for i, row := range rows {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("Item %d:\n", i+1)
			f.printRecord(row, "  ")
		}
		return nil
	}

	if record, ok := normalizeRecord(data); ok {
		f.printRecord(record, "")
		return nil
	}

	fmt.Printf("%v\n", data)
	return nil
}

// printRecord prints a map's fields in a stable order
func (f *TextFormatter) printRecord(record map[string]interface{}, indent string) {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%s%s: %v\n", indent, f.formatKey(key), f.formatValue(record[key]))
	}
}

// formatKey converts a field name to Title Case
func (f *TextFormatter) formatKey(key string) string {
	key = strings.TrimPrefix(key, "_")
	words := strings.Split(key, "_")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}

// formatValue formats a value for display
func (f *TextFormatter) formatValue(value interface{}) interface{} {
	if value == nil {
		return "N/A"
	}
	return value
}
