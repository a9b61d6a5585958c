package service

import (
	"encoding/json"
	"time"

	"webhook-dispatcher/internal/core/domain"
)

// EnvelopeVersion is the schema version stamped on every delivery body.
const EnvelopeVersion = "2025-01-01"

// Envelope is the JSON body POSTed to a webhook endpoint. Field order is fixed
// by the struct so identical inputs always serialize to identical bytes.
type Envelope struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Version   string `json:"version"`
	CreatedAt string `json:"createdAt"`
	TeamID    string `json:"teamId"`
	Data      any    `json:"data"`
	Attempt   int    `json:"attempt"`
}

// BuildEnvelope wraps a call into its wire envelope. Data is the parsed
// payload when it is valid JSON, otherwise the raw payload string.
func BuildEnvelope(call *domain.WebhookCall) Envelope {
	var data any = call.Payload
	if json.Valid([]byte(call.Payload)) {
		data = json.RawMessage(call.Payload)
	}

	return Envelope{
		ID:        call.ID.String(),
		Type:      call.Type,
		Version:   EnvelopeVersion,
		CreatedAt: call.CreatedAt.UTC().Format(time.RFC3339Nano),
		TeamID:    call.TeamID.String(),
		Data:      data,
		Attempt:   call.Attempt,
	}
}

// MarshalEnvelope serializes the envelope for a call.
func MarshalEnvelope(call *domain.WebhookCall) ([]byte, error) {
	return json.Marshal(BuildEnvelope(call))
}
