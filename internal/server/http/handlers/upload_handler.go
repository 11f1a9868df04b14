package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tareffa/internal/server/http/dto"
)

// UploadHandler reserves attachment uploads and serves attachment downloads.
type UploadHandler struct {
	facade UploadFacade
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(facade UploadFacade) *UploadHandler {
	return &UploadHandler{facade: facade}
}

// Prepare handles POST /api/uploads.
func (h *UploadHandler) Prepare(c *gin.Context) {
	var req dto.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	slot, err := h.facade.PrepareUpload(c.Request.Context(), req.Name, req.Size, req.Type)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Key:        slot.Key,
		UploadURL:  slot.UploadURL,
		Attachment: toAttachmentPayload(slot.Attachment),
	})
}

// Download handles GET /api/files/*key by redirecting to object storage.
func (h *UploadHandler) Download(c *gin.Context) {
	url, err := h.facade.ResolveFile(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}
