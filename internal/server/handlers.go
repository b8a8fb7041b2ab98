package server

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/imagex"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/pipeline"
)

// imageSource pulls the image bytes plus declared MIME out of the request,
// letting each route exist in an upload and a base64 flavor.
type imageSource func(c *gin.Context) ([]byte, string, error)

type base64ImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func (s *Server) imageFromUpload(c *gin.Context) ([]byte, string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, "", fmt.Errorf("missing image upload: %w", err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}

func (s *Server) imageFromBase64(c *gin.Context) ([]byte, string, error) {
	var req base64ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, "", fmt.Errorf("no image_base64 provided: %w", err)
	}
	return imagex.DecodeBase64MaybeDataURL(req.ImageBase64)
}

func (s *Server) assessDamage(source imageSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, mime, err := source(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		out, err := s.orch.Run(c.Request.Context(), pipeline.Request{
			Image:          data,
			DeclaredMIME:   mime,
			Task:           constants.TaskDamageAssessment,
			SkipFraudCheck: boolQuery(c, "skip_fraud_check"),
			ProcessAnyway:  boolQuery(c, "process_anyway"),
		})
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func (s *Server) accidentReport(source imageSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := constants.ParseLanguage(c.DefaultQuery("language", string(constants.LanguageEN)))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("unsupported language, expected one of %s", strings.Join(constants.LanguagesAsStrings(), ", ")),
			})
			return
		}
		data, mime, err := source(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		out, err := s.orch.Run(c.Request.Context(), pipeline.Request{
			Image:          data,
			DeclaredMIME:   mime,
			Task:           constants.TaskAccidentReport,
			Language:       lang,
			SkipFraudCheck: boolQuery(c, "skip_fraud_check"),
			ProcessAnyway:  boolQuery(c, "process_anyway"),
		})
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func (s *Server) enhanceImage(source imageSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, mime, err := source(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		enhanced, err := s.orch.Enhance(data, mime)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"image_base64": base64.StdEncoding.EncodeToString(enhanced.Data),
			"message":      "Enhanced image in base64 format.",
		})
	}
}

func (s *Server) ocrImage(source imageSource, enhanceFirst bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, mime, err := source(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ocrCtx, err := s.orch.ExtractText(c.Request.Context(), data, mime, enhanceFirst)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ocrCtx)
	}
}

func boolQuery(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery(name, "false"))
	return v
}
