package steam

import (
	"encoding/json"
)

// decodeEnvelope unmarshals a 200 response body into one of the per-endpoint
// response helpers. Those hold their payload behind a pointer keyed by the
// wrapper name, so an absent or null payload comes back as nil rather than
// an error and each endpoint substitutes its empty container.
func decodeEnvelope(body []byte, v any) error {
	if !json.Valid(body) {
		return requestFailed("Steam returned a malformed response body", nil)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &Error{
			Kind:    KindNoData,
			Message: "Steam response did not contain the expected data",
			Err:     err,
		}
	}
	return nil
}

// nonNil keeps empty lists as [] rather than null when re-encoded.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
