package validation

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DecodeObject reads the top level keys of a JSON object body so callers
// can tell an absent field from one sent as null or empty.
func DecodeObject(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, ErrInvalidPayload
	}
	return raw, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// sentNull reports a field that is present with a JSON null value.
func sentNull(raw map[string]json.RawMessage, field string) bool {
	value, ok := raw[field]
	return ok && isJSONNull(value)
}

// ParseTime accepts RFC 3339 timestamps and plain YYYY-MM-DD dates, the
// latter read as midnight UTC.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC().Truncate(time.Microsecond), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseTagIDs(values []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
