package api

import (
	"encoding/json"
	"time"
)

// Row is one replicated key/value unit on the wire.
type Row struct {
	UpdatedAt time.Time       `json:"updated_at"`
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
}

// UpsertRequest inserts or replaces the row with the given key
// (conflict target = key, resolution = replace).
type UpsertRequest struct {
	Row Row `json:"row"`
}

// UpsertResponse acknowledges an upsert. No partial-success semantics.
type UpsertResponse struct {
	Key       string    `json:"key"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RowsResponse carries a delta or full query result, ordered ascending by
// updated_at.
type RowsResponse struct {
	Rows  []Row `json:"rows"`
	Count int   `json:"count"`
}
