package common

import "time"

// RegistryEvent is the structured change notification emitted for every state
// mutation. Payload carries the identifiers and old/new values an off-service
// indexer needs to rebuild the provenance chain without replaying calls.
type RegistryEvent struct {
	Type      string                 `json:"type"`
	TokenID   *int64                 `json:"token_id,omitempty"`
	Actor     string                 `json:"actor"`
	Payload   map[string]interface{} `json:"payload"`
	Timestamp time.Time              `json:"timestamp"`
}
