package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/imagex"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/llm"
)

// writeError maps pipeline failures onto status codes: bad input is the
// caller's fault, everything past validation is ours or the provider's.
func (s *Server) writeError(c *gin.Context, err error) {
	var (
		invalid   *imagex.InvalidImageError
		unproc    *imagex.UnprocessableImageError
		upstream  *llm.UpstreamServiceError
		malformed *llm.MalformedModelResponseError
	)
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	case errors.As(err, &unproc):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": unproc.Error()})
	case errors.As(err, &upstream):
		s.log.Error("server.upstream_error", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "model provider unavailable"})
	case errors.As(err, &malformed):
		s.log.Error("server.malformed_model_response", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "model returned an unusable response"})
	default:
		s.log.Error("server.internal_error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
