package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskapi/internal/adapter/http/dto"
	"taskapi/internal/adapter/http/mapper"
	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/ports"
	"taskapi/pkg/apierrors"
)

type TagHandler struct {
	tagService ports.TagService
}

func NewTagHandler(tagService ports.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	q, err := validation.BuildTagQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidQuery, "invalid tag query")
		return
	}

	tags, err := h.tagService.ListTags(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTag, "failed to list tags")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTagItems(tags))
}

func (h *TagHandler) GetTag(c *gin.Context) {
	tagID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidTagID)
		return
	}

	tag, err := h.tagService.GetTag(c.Request.Context(), tagID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTag, "failed to get tag", zap.Stringer("tag_id", tagID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTagItem(tag))
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	raw, err := bindBody(c, &req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid tag payload")
		return
	}

	in, err := validation.BuildCreateTagInput(req, raw)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid tag payload")
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTag, "failed to create tag")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTagItem(tag))
}

func (h *TagHandler) ReplaceTag(c *gin.Context) {
	h.update(c, true)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	h.update(c, false)
}

func (h *TagHandler) update(c *gin.Context, full bool) {
	tagID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidTagID)
		return
	}

	var req dto.UpdateTagRequest
	raw, err := bindBody(c, &req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid tag payload")
		return
	}

	in, err := validation.BuildUpdateTagInput(req, raw, full)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid tag payload")
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), tagID, in)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTag, "failed to update tag", zap.Stringer("tag_id", tagID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTagItem(tag))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidTagID)
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), tagID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTag, "failed to delete tag", zap.Stringer("tag_id", tagID))
		return
	}

	c.Status(http.StatusNoContent)
}
