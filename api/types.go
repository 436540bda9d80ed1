// Package api - Request and response types
package api

import (
	"time"

	"cablesize/core/types"
)

// SizeRequest is the body of POST /size
type SizeRequest struct {
	types.CableSizingInput
}

// NamedCircuit is one circuit of a batch request
type NamedCircuit struct {
	// Name labels the circuit in the response
	Name string `json:"name"`

	// Input is the sizing request
	Input types.CableSizingInput `json:"input"`
}

// BatchRequest is the body of POST /batch
type BatchRequest struct {
	Circuits []NamedCircuit `json:"circuits"`
}

// ResponseMetadata carries execution context on every response
type ResponseMetadata struct {
	// InputHash is the deterministic hash of the request, the same
	// key the memoization cache uses
	InputHash string `json:"input_hash"`

	// EngineVersion identifies the engine build
	EngineVersion string `json:"engine_version"`

	// CacheHit reports whether the result was served from cache
	CacheHit bool `json:"cache_hit"`

	// DurationMs is the server-side processing time
	DurationMs int64 `json:"duration_ms"`
}

// SizeResponse is the body of a successful POST /size
type SizeResponse struct {
	RequestID string                   `json:"request_id"`
	Timestamp time.Time                `json:"timestamp"`
	Result    *types.CableSizingResult `json:"result"`
	Metadata  ResponseMetadata         `json:"metadata"`
}

// BatchResult is one circuit's outcome in a batch response
type BatchResult struct {
	Name   string                   `json:"name"`
	Result *types.CableSizingResult `json:"result,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

// BatchResponse is the body of a successful POST /batch
type BatchResponse struct {
	RequestID string        `json:"request_id"`
	Timestamp time.Time     `json:"timestamp"`
	Results   []BatchResult `json:"results"`
}

// StandardInfo describes one supported framework for GET /standards
type StandardInfo struct {
	Standard          types.Standard   `json:"standard"`
	LengthUnit        types.LengthUnit `json:"length_unit"`
	Sizes             []types.Size     `json:"sizes"`
	InsulationRatings []int            `json:"insulation_ratings"`
}

// StandardsResponse is the body of GET /standards
type StandardsResponse struct {
	Standards []StandardInfo `json:"standards"`
}

// ErrorResponse is the body of any failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
