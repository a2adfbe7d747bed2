package format

import "encoding/json"

// normalizeRows flattens arbitrary data (typed entity structs included) into
// generic rows by round-tripping through JSON, so individual formatters only
// ever deal with maps and scalars.
func normalizeRows(data interface{}) ([]map[string]interface{}, bool) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, false
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

// normalizeRecord flattens a single value into a map, when possible
func normalizeRecord(data interface{}) (map[string]interface{}, bool) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, false
	}

	var record map[string]interface{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, false
	}
	return record, true
}
