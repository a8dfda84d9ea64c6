package validation

import (
	"encoding/json"

	"taskapi/internal/adapter/http/dto"
	"taskapi/internal/core/domain"
)

func BuildCreateUserInput(req dto.CreateUserRequest) domain.CreateUserInput {
	return domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	}
}

func BuildUpdateUserInput(req dto.UpdateUserRequest, raw map[string]json.RawMessage, full bool) (domain.UpdateUserInput, error) {
	errs := fieldErrors{}
	for _, field := range []string{"name", "email"} {
		if full && !hasJSONField(raw, field) {
			errs.add(field, ReasonRequired)
		}
		if sentNull(raw, field) {
			errs.add(field, ReasonRequired)
		}
	}
	if err := errs.err(); err != nil {
		return domain.UpdateUserInput{}, err
	}

	var in domain.UpdateUserInput
	if req.Name != nil {
		in.Name = domain.Some(*req.Name)
	}
	if req.Email != nil {
		in.Email = domain.Some(*req.Email)
	}
	return in, nil
}
