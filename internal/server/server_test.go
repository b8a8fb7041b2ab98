package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/assessment"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/fraud"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/imagex"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/llm"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/ocr"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/pipeline"
)

type fakeScorer struct{ verdict fraud.Verdict }

func (f *fakeScorer) Inspect([]byte) fraud.Verdict { return f.verdict }

type fakeOCR struct{ out ocr.Context }

func (f *fakeOCR) ExtractContext(context.Context, *imagex.Asset) ocr.Context { return f.out }

type fakeClient struct {
	response []byte
	err      error
}

func (f *fakeClient) Complete(context.Context, llm.PromptPair, string) ([]byte, error) {
	return f.response, f.err
}

const damageJSON = `{
  "vehicle_info": {"make": "Toyota", "model": "Corolla"},
  "damage_data": {
    "damaged_parts": [{"part": "Hood", "severity": "Minor"}],
    "cost_breakdown": {
      "parts": [{"name": "Paint", "cost": 100}],
      "labor": [],
      "additional_fees": []
    }
  }
}`

func newTestRouter(scorer pipeline.TamperScorer, client llm.ChatClient, extractor pipeline.ContextExtractor) http.Handler {
	orch := pipeline.NewOrchestrator(
		imagex.NewValidator(imagex.ValidatorConfig{}, nil),
		imagex.NewNormalizer(nil),
		scorer,
		extractor,
		client,
		assessment.NewTransformer("EUR", nil),
		8<<20,
		nil,
	)
	return New(orch, nil).Router()
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 64))))
	return buf.Bytes()
}

func multipartImage(t *testing.T, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("image", "claim.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestAssessDamageUpload(t *testing.T) {
	router := newTestRouter(&fakeScorer{}, &fakeClient{response: []byte(damageJSON)}, &fakeOCR{})
	body, contentType := multipartImage(t, pngBytes(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess-damage", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "delivered", out["status"])
	assessment := out["assessment"].(map[string]any)
	assert.Equal(t, "Toyota", assessment["vehicle_info"].(map[string]any)["make"])
}

func TestAssessDamageBase64(t *testing.T) {
	router := newTestRouter(&fakeScorer{}, &fakeClient{response: []byte(damageJSON)}, &fakeOCR{})
	payload, _ := json.Marshal(map[string]string{
		"image_base64": base64.StdEncoding.EncodeToString(pngBytes(t)),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess-damage-base64", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuspiciousImageReturnsWithheldNot4xx(t *testing.T) {
	reason := "image appears to be edited with GIMP 2.10"
	router := newTestRouter(
		&fakeScorer{verdict: fraud.Verdict{IsSuspicious: true, Reason: &reason}},
		&fakeClient{response: []byte(damageJSON)},
		&fakeOCR{},
	)
	body, contentType := multipartImage(t, pngBytes(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess-damage", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "withheld", out["status"])
	assert.Contains(t, out["warning"], "GIMP")
	assert.Nil(t, out["assessment"])
}

func TestInvalidUploadIs400(t *testing.T) {
	router := newTestRouter(&fakeScorer{}, &fakeClient{response: []byte(damageJSON)}, &fakeOCR{})
	body, contentType := multipartImage(t, []byte("not an image"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess-damage", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpstreamFailureIs502(t *testing.T) {
	router := newTestRouter(&fakeScorer{},
		&fakeClient{err: &llm.UpstreamServiceError{Provider: "groq", Err: assert.AnError}},
		&fakeOCR{})
	body, contentType := multipartImage(t, pngBytes(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess-damage", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAccidentReportLanguageValidation(t *testing.T) {
	router := newTestRouter(&fakeScorer{}, &fakeClient{response: []byte(`{}`)}, &fakeOCR{})
	body, contentType := multipartImage(t, pngBytes(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accident-report?language=fr", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccidentReportDutch(t *testing.T) {
	router := newTestRouter(&fakeScorer{},
		&fakeClient{response: []byte(`{"ongevalsaangifte": {"ongevaldetails": {"land": "Nederland"}}}`)},
		&fakeOCR{})
	body, contentType := multipartImage(t, pngBytes(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accident-report?language=nl", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"land":"Nederland"`)
}

func TestTestingOCRRoute(t *testing.T) {
	router := newTestRouter(&fakeScorer{}, &fakeClient{},
		&fakeOCR{out: ocr.Context{RawText: "Polisnummer: 1", Confidence: 0.5}})
	body, contentType := multipartImage(t, pngBytes(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/testing/enhance-and-ocr-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Polisnummer")
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&fakeScorer{}, &fakeClient{}, &fakeOCR{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
