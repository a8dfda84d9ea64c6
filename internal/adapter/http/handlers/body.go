package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"taskapi/internal/adapter/http/validation"
)

// bindBody decodes the JSON body into req and returns its top level keys.
func bindBody(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, validation.ErrInvalidPayload
	}

	raw, err := validation.DecodeObject(body)
	if err != nil {
		return nil, err
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, validation.FromBindError(err)
	}
	return raw, nil
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
