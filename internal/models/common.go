package models

// Meta carries the collection metadata the backend attaches to list responses
type Meta struct {
	Count         int    `json:"count"`
	TotalCount    int    `json:"total_count"`
	GlobalCount   int    `json:"global_count"`
	TimeMin       string `json:"time_min,omitempty"`
	TimeMax       string `json:"time_max,omitempty"`
	GlobalTimeMin string `json:"global_time_min,omitempty"`
	GlobalTimeMax string `json:"global_time_max,omitempty"`
}
