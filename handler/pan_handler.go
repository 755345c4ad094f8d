package handler

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Aashish23092/pan-extraction-service/dto"
	"github.com/Aashish23092/pan-extraction-service/service"
	"github.com/gin-gonic/gin"
)

// PANHandler handles PAN extraction requests
type PANHandler struct {
	panService  *service.PANService
	maxFileSize int64
}

func NewPANHandler(panService *service.PANService, maxFileSize int64) *PANHandler {
	return &PANHandler{
		panService:  panService,
		maxFileSize: maxFileSize,
	}
}

// ExtractPAN handles the POST /api/pan/extract endpoint. Only request-level
// problems (missing or empty upload) produce an error response; extraction
// itself always answers 200, with empty fields when nothing was found.
func (h *PANHandler) ExtractPAN(c *gin.Context) {
	file, err := c.FormFile("pan_front")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "PAN front image is required.")
		return
	}

	if file.Size > h.maxFileSize {
		h.sendError(c, http.StatusBadRequest, "Uploaded file is too large.")
		return
	}

	reader, err := file.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file.")
		return
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read file data.")
		return
	}

	if len(fileData) == 0 {
		h.sendError(c, http.StatusBadRequest, "Uploaded file is empty.")
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = inferMimeType(file.Filename)
	}

	log.Printf("Processing PAN file: %s (%s, %d bytes)", file.Filename, mimeType, len(fileData))

	result := h.panService.ExtractFromFile(fileData, mimeType)
	c.JSON(http.StatusOK, result)
}

func (h *PANHandler) sendError(c *gin.Context, statusCode int, message string) {
	log.Printf("Request error: %s", message)
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

// inferMimeType infers MIME type from file extension
func inferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	}
	return ""
}
