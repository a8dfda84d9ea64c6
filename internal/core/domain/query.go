package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SortField is one ordering term. Field is always a column from an allow-list.
type SortField struct {
	Field string
	Desc  bool
}

var (
	TaskOrderingFields = []string{"created_at", "updated_at", "priority", "due_date"}
	TagOrderingFields  = []string{"name", "created_at"}
	UserOrderingFields = []string{"name", "created_at"}

	DefaultTaskOrdering = []SortField{{Field: "created_at", Desc: true}}
	DefaultTagOrdering  = []SortField{{Field: "name"}}
	DefaultUserOrdering = []SortField{{Field: "name"}}
)

// ParseOrdering reads a comma separated list such as "-priority,created_at".
// Unknown and repeated fields are skipped; when nothing usable remains the
// fallback ordering is returned.
func ParseOrdering(raw string, allowed []string, fallback []SortField) []SortField {
	var out []SortField
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		if field == "" || !contains(allowed, field) {
			continue
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, SortField{Field: field, Desc: desc})
	}
	if len(out) == 0 {
		return append([]SortField(nil), fallback...)
	}
	return out
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

type TaskQuery struct {
	Status        *TaskStatus
	Priority      *int
	PriorityMin   *int
	PriorityMax   *int
	IsActive      *bool
	TagID         *uuid.UUID
	DueAfter      *time.Time
	DueBefore     *time.Time
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Search        string
	Ordering      []SortField
}

// WithStatus returns a copy of q restricted to status.
func (q TaskQuery) WithStatus(status TaskStatus) TaskQuery {
	q.Status = &status
	return q
}

type TagQuery struct {
	Name          string
	IsActive      *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Search        string
	Ordering      []SortField
}

type UserQuery struct {
	IsActive *bool
	Search   string
	Ordering []SortField
}
