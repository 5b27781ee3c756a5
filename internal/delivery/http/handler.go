package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// minImageBytes is the floor below which a payload cannot be a usable photo.
// Rejecting these before the model call saves an API round trip.
const minImageBytes = 1024

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysisService *usecase.AnalysisService
}

// NewHandler creates a new HTTP handler
func NewHandler(analysisService *usecase.AnalysisService) *Handler {
	return &Handler{
		analysisService: analysisService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mousify-backend",
		"version": "2.0.0",
	})
}

// AnalyzeShoe handles shoe analysis requests
func (h *Handler) AnalyzeShoe(c *gin.Context) {
	var request domain.AnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}

	if err := validateImage(request.Image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.analysisService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "analysis service not configured",
		})
		return
	}

	response, err := h.analysisService.AnalyzeShoe(c.Request.Context(), &request)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidImage):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrOpenAIAPIFailure), errors.Is(err, domain.ErrAnalysisParseFailure):
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// validateImage is the pre-flight image quality check: the payload must be
// decodable base64 (data URL prefix allowed) and big enough to be a photo.
func validateImage(image string) error {
	payload := image
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return fmt.Errorf("%w: malformed data URL", domain.ErrInvalidImage)
		}
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: not valid base64", domain.ErrInvalidImage)
	}
	if len(raw) < minImageBytes {
		return fmt.Errorf("%w: image too small (%d bytes)", domain.ErrInvalidImage, len(raw))
	}
	return nil
}
