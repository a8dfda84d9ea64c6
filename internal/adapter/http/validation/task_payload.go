package validation

import (
	"encoding/json"
	"time"

	"taskapi/internal/adapter/http/dto"
	"taskapi/internal/core/domain"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	errs := fieldErrors{}
	for _, field := range []string{"status", "priority", "is_active", "tag_ids"} {
		if sentNull(raw, field) {
			errs.add(field, ReasonInvalid)
		}
	}

	in := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		in.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		in.Priority = *req.Priority
	}
	if req.IsActive != nil {
		in.IsActive = domain.Some(*req.IsActive)
	}

	if req.DueDate != nil {
		dueDate, err := ParseTime(*req.DueDate)
		if err != nil {
			errs.add("due_date", ReasonInvalid)
		} else {
			in.DueDate = &dueDate
		}
	}

	if len(req.TagIDs) > 0 {
		ids, ok := parseTagIDs(req.TagIDs)
		if !ok {
			errs.add("tag_ids", ReasonInvalidUUID)
		}
		in.TagIDs = ids
	}

	if err := errs.err(); err != nil {
		return domain.CreateTaskInput{}, err
	}
	return in, nil
}

// BuildUpdateTaskInput maps a PUT (full) or PATCH body to a partial update.
// Only keys present in raw are applied. tag_ids absent leaves the tags
// alone while tag_ids [] clears them.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage, full bool) (domain.UpdateTaskInput, error) {
	errs := fieldErrors{}
	if full && !hasJSONField(raw, "title") {
		errs.add("title", ReasonRequired)
	}
	if sentNull(raw, "title") {
		errs.add("title", ReasonRequired)
	}
	for _, field := range []string{"status", "priority", "is_active", "tag_ids"} {
		if sentNull(raw, field) {
			errs.add(field, ReasonInvalid)
		}
	}

	var in domain.UpdateTaskInput
	if req.Title != nil {
		in.Title = domain.Some(*req.Title)
	}
	if hasJSONField(raw, "description") {
		in.Description = domain.Some(req.Description)
	}
	if req.Status != nil {
		in.Status = domain.Some(domain.TaskStatus(*req.Status))
	}
	if req.Priority != nil {
		in.Priority = domain.Some(*req.Priority)
	}
	if req.IsActive != nil {
		in.IsActive = domain.Some(*req.IsActive)
	}

	if hasJSONField(raw, "due_date") {
		var dueDate *time.Time
		if req.DueDate != nil {
			parsed, err := ParseTime(*req.DueDate)
			if err != nil {
				errs.add("due_date", ReasonInvalid)
			}
			dueDate = &parsed
		}
		in.DueDate = domain.Some(dueDate)
	}

	if hasJSONField(raw, "tag_ids") && req.TagIDs != nil {
		ids, ok := parseTagIDs(req.TagIDs)
		if !ok {
			errs.add("tag_ids", ReasonInvalidUUID)
		}
		in.TagIDs = domain.Some(ids)
	}

	if err := errs.err(); err != nil {
		return domain.UpdateTaskInput{}, err
	}
	return in, nil
}
