package validation

import (
	"encoding/json"

	"taskapi/internal/adapter/http/dto"
	"taskapi/internal/core/domain"
)

func BuildCreateTagInput(req dto.CreateTagRequest, raw map[string]json.RawMessage) (domain.CreateTagInput, error) {
	if sentNull(raw, "is_active") {
		return domain.CreateTagInput{}, domain.NewValidationError("is_active", ReasonInvalid)
	}

	in := domain.CreateTagInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.IsActive != nil {
		in.IsActive = domain.Some(*req.IsActive)
	}
	return in, nil
}

func BuildUpdateTagInput(req dto.UpdateTagRequest, raw map[string]json.RawMessage, full bool) (domain.UpdateTagInput, error) {
	errs := fieldErrors{}
	if full && !hasJSONField(raw, "name") {
		errs.add("name", ReasonRequired)
	}
	if sentNull(raw, "name") {
		errs.add("name", ReasonRequired)
	}
	if sentNull(raw, "is_active") {
		errs.add("is_active", ReasonInvalid)
	}
	if err := errs.err(); err != nil {
		return domain.UpdateTagInput{}, err
	}

	var in domain.UpdateTagInput
	if req.Name != nil {
		in.Name = domain.Some(*req.Name)
	}
	if hasJSONField(raw, "description") {
		in.Description = domain.Some(req.Description)
	}
	if req.IsActive != nil {
		in.IsActive = domain.Some(*req.IsActive)
	}
	return in, nil
}
