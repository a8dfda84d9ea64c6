package validation

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

// queryReader pulls typed values out of a query string and records a
// field error for every value it cannot parse. Empty values are ignored.
type queryReader struct {
	values url.Values
	errs   fieldErrors
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values, errs: fieldErrors{}}
}

func (r *queryReader) text(key string) string {
	return strings.TrimSpace(r.values.Get(key))
}

func (r *queryReader) integer(key string) *int {
	raw := r.text(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		r.errs.add(key, ReasonInvalid)
		return nil
	}
	return &value
}

func (r *queryReader) boolean(key string) *bool {
	raw := r.text(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.errs.add(key, ReasonInvalid)
		return nil
	}
	return &value
}

func (r *queryReader) timestamp(key string) *time.Time {
	raw := r.text(key)
	if raw == "" {
		return nil
	}
	value, err := ParseTime(raw)
	if err != nil {
		r.errs.add(key, ReasonInvalid)
		return nil
	}
	return &value
}

func (r *queryReader) identifier(key string) *uuid.UUID {
	raw := r.text(key)
	if raw == "" {
		return nil
	}
	value, err := uuid.Parse(raw)
	if err != nil {
		r.errs.add(key, ReasonInvalidUUID)
		return nil
	}
	return &value
}

func (r *queryReader) status(key string) *domain.TaskStatus {
	raw := r.text(key)
	if raw == "" {
		return nil
	}
	status := domain.TaskStatus(raw)
	if !status.Valid() {
		r.errs.add(key, ReasonInvalid)
		return nil
	}
	return &status
}

func BuildTaskQuery(values url.Values) (domain.TaskQuery, error) {
	r := newQueryReader(values)
	q := domain.TaskQuery{
		Status:        r.status("status"),
		Priority:      r.integer("priority"),
		PriorityMin:   r.integer("priority_min"),
		PriorityMax:   r.integer("priority_max"),
		IsActive:      r.boolean("is_active"),
		TagID:         r.identifier("tag"),
		DueAfter:      r.timestamp("due_after"),
		DueBefore:     r.timestamp("due_before"),
		CreatedAfter:  r.timestamp("created_after"),
		CreatedBefore: r.timestamp("created_before"),
		Search:        r.text("search"),
		Ordering:      domain.ParseOrdering(r.text("ordering"), domain.TaskOrderingFields, domain.DefaultTaskOrdering),
	}
	if err := r.errs.err(); err != nil {
		return domain.TaskQuery{}, err
	}
	return q, nil
}

func BuildTagQuery(values url.Values) (domain.TagQuery, error) {
	r := newQueryReader(values)
	q := domain.TagQuery{
		Name:          r.text("name"),
		IsActive:      r.boolean("is_active"),
		CreatedAfter:  r.timestamp("created_after"),
		CreatedBefore: r.timestamp("created_before"),
		Search:        r.text("search"),
		Ordering:      domain.ParseOrdering(r.text("ordering"), domain.TagOrderingFields, domain.DefaultTagOrdering),
	}
	if err := r.errs.err(); err != nil {
		return domain.TagQuery{}, err
	}
	return q, nil
}

func BuildUserQuery(values url.Values) (domain.UserQuery, error) {
	r := newQueryReader(values)
	q := domain.UserQuery{
		IsActive: r.boolean("is_active"),
		Search:   r.text("search"),
		Ordering: domain.ParseOrdering(r.text("ordering"), domain.UserOrderingFields, domain.DefaultUserOrdering),
	}
	if err := r.errs.err(); err != nil {
		return domain.UserQuery{}, err
	}
	return q, nil
}
