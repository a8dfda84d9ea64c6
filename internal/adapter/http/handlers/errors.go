package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskapi/internal/adapter/http/middleware"
	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/domain"
	"taskapi/pkg/apierrors"
)

// respondError writes the API error matching err. Errors that are not part
// of the domain vocabulary are logged and reported as failKey.
func respondError(c *gin.Context, err error, failKey string, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	var validationErr *domain.ValidationError
	var referenceErr *domain.ReferenceError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateFieldError(http.StatusBadRequest, apierrors.MsgValidationFailed, lang, validationErr.Fields),
		)
	case errors.As(err, &referenceErr):
		ids := make([]string, 0, len(referenceErr.IDs))
		for _, id := range referenceErr.IDs {
			ids = append(ids, id.String())
		}
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateFieldError(http.StatusBadRequest, apierrors.MsgUnknownTags, lang, map[string]string{
				referenceErr.Field: "not_found: " + strings.Join(ids, ","),
			}),
		)
	case errors.Is(err, validation.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
	case errors.Is(err, domain.ErrTagNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTagNotFound, lang))
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang))
	case errors.Is(err, domain.ErrTagNameTaken):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateFieldError(http.StatusConflict, apierrors.MsgTagNameTaken, lang, map[string]string{"name": "taken"}),
		)
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgConflict, lang))
	default:
		zap.L().Error(logMsg, append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, failKey, lang))
	}
}

func respondInvalidID(c *gin.Context, msgKey string) {
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)))
}
