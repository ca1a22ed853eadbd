package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/mental-health-mirror/mood-core/config"
	"github.com/mental-health-mirror/mood-core/mood"
	"github.com/mental-health-mirror/mood-core/orchestrator"
	"github.com/mental-health-mirror/mood-core/recommend"
)

func init() { gin.SetMode(gin.TestMode) }

type fakeAnalyzer struct {
	voice    *orchestrator.VoiceAnalysis
	text     mood.TextEstimate
	err      error
	filename string
	data     []byte
}

func (f *fakeAnalyzer) AnalyzeVoice(_ context.Context, data []byte, filename string) (*orchestrator.VoiceAnalysis, error) {
	f.data, f.filename = data, filename
	return f.voice, f.err
}

func (f *fakeAnalyzer) AnalyzeText(context.Context, string) (mood.TextEstimate, error) {
	return f.text, f.err
}

func newTestServer(a Analyzer) *Server {
	var c cfg.Root
	c.Server.MaxUploadMB = 1
	log, _ := test.NewNullLogger()
	return New(&c, a, recommend.NewSelector(recommend.DefaultCatalog()), log)
}

func do(t *testing.T, s *Server, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze-voice", &b)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestRoot(t *testing.T) {
	rec, body := do(t, newTestServer(&fakeAnalyzer{}), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mental Health Mirror AI Service is running", body["message"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec, _ := do(t, newTestServer(&fakeAnalyzer{}), req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/analyze-text", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Headers", "content-type")

	rec := httptest.NewRecorder()
	newTestServer(&fakeAnalyzer{}).Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestAnalyzeVoice(t *testing.T) {
	a := &fakeAnalyzer{voice: &orchestrator.VoiceAnalysis{Result: mood.FusedResult{
		Mood:             mood.Angry,
		Score:            1,
		Energy:           8,
		SentimentScore:   -0.9,
		EmotionalState:   "anger",
		DetectedEmotions: []string{"anger"},
		TranscribedText:  "I am furious and yelling",
	}}}

	rec, body := do(t, newTestServer(a), uploadRequest(t, "audio", "clip.wav", []byte("RIFF")))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "clip.wav", a.filename)
	assert.Equal(t, []byte("RIFF"), a.data)

	assert.Equal(t, "angry", body["mood"])
	assert.EqualValues(t, 1, body["score"])
	assert.EqualValues(t, 8, body["energy"])
	assert.EqualValues(t, -0.9, body["sentimentScore"])
	assert.Equal(t, "anger", body["emotional_state"])
	assert.Equal(t, []any{"anger"}, body["detected_emotions"])
	assert.Equal(t, "I am furious and yelling", body["transcribed_text"])
}

func TestAnalyzeVoiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		prefix string
	}{
		{"decode", fmt.Errorf("decode webm: %w", mood.ErrAudioDecode), http.StatusBadRequest, "Error analyzing voice: "},
		{"features", mood.ErrFeatureExtraction, http.StatusBadRequest, "Error analyzing voice: "},
		{"blank transcript", mood.ErrEmptyInput, http.StatusBadRequest, "Error analyzing voice: "},
		{"upstream", mood.Upstream("transcriber", errors.New("down")), http.StatusInternalServerError, "Error analyzing voice: transcriber: down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, newTestServer(&fakeAnalyzer{err: tt.err}), uploadRequest(t, "audio", "clip.webm", []byte{1}))
			assert.Equal(t, tt.status, rec.Code)
			assert.True(t, strings.HasPrefix(body["detail"].(string), tt.prefix))
		})
	}
}

func TestAnalyzeVoiceMissingFile(t *testing.T) {
	rec, body := do(t, newTestServer(&fakeAnalyzer{}), uploadRequest(t, "file", "clip.wav", []byte("RIFF")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Audio file is required", body["detail"])
}

func TestAnalyzeVoiceTooLarge(t *testing.T) {
	a := &fakeAnalyzer{}
	rec, body := do(t, newTestServer(a), uploadRequest(t, "audio", "clip.wav", make([]byte, 2<<20)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Audio file is too large", body["detail"])
	assert.Nil(t, a.data)
}

func TestAnalyzeText(t *testing.T) {
	a := &fakeAnalyzer{text: mood.TextEstimate{Mood: mood.Happy, Score: 9, Energy: 8, SentimentScore: 0.8, EmotionalState: "joy", DetectedEmotions: []string{"joy"}}}
	rec, body := do(t, newTestServer(a), postJSON("/analyze-text", `{"text":"What a lovely day"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "happy", body["mood"])
	assert.EqualValues(t, 9, body["score"])
	assert.Equal(t, []any{"joy"}, body["detected_emotions"])
}

func TestAnalyzeTextBlank(t *testing.T) {
	for _, payload := range []string{`{}`, `{"text":""}`, `{"text":"   "}`} {
		rec, body := do(t, newTestServer(&fakeAnalyzer{}), postJSON("/analyze-text", payload))
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, "Text is required", body["detail"], payload)
	}
}

func TestAnalyzeTextUpstreamFailure(t *testing.T) {
	a := &fakeAnalyzer{err: mood.Upstream("sentiment", errors.New("timeout"))}
	rec, body := do(t, newTestServer(a), postJSON("/analyze-text", `{"text":"hi"}`))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error analyzing text: sentiment: timeout", body["detail"])
}

func TestGenerateRecommendations(t *testing.T) {
	rec, body := do(t, newTestServer(&fakeAnalyzer{}), postJSON("/generate-recommendations",
		`{"userId":"u1","mood":"happy","energyLevel":8,"detectedEmotions":["joy"]}`))
	require.Equal(t, http.StatusOK, rec.Code)

	recs := body["recommendations"].([]any)
	require.Len(t, recs, 4)
	first := recs[0].(map[string]any)
	assert.Equal(t, "music", first["type"])
	assert.Equal(t, "Happy Upbeat Playlist", first["title"])
	assert.Equal(t, "happy", first["mood"])
}

func TestGenerateRecommendationsMissingFields(t *testing.T) {
	for _, payload := range []string{
		`{"mood":"happy","energyLevel":8}`,
		`{"userId":"u1","energyLevel":8}`,
		`{"userId":"u1","mood":"happy"}`,
		`{"userId":"u1","mood":"happy","energyLevel":0}`,
	} {
		rec, body := do(t, newTestServer(&fakeAnalyzer{}), postJSON("/generate-recommendations", payload))
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, "Missing required fields", body["detail"], payload)
	}
}

func TestGenerateSummary(t *testing.T) {
	rec, body := do(t, newTestServer(&fakeAnalyzer{}), postJSON("/generate-summary", `{"checkIns":[
		{"mood":"sad","moodScore":3,"energyLevel":3},
		{"mood":"neutral","moodScore":5,"energyLevel":4},
		{"mood":"happy","moodScore":8,"energyLevel":6}
	]}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["insights"], "average mood score was 5.3/10")
	assert.Contains(t, body["insights"], "Your mood has been improving over the week.")
	assert.True(t, strings.HasPrefix(body["recommendations"].(string),
		"Based on your mood patterns this week, consider the following:\n\n"))
}

func TestGenerateSummaryEmpty(t *testing.T) {
	for _, payload := range []string{`{}`, `{"checkIns":[]}`} {
		rec, body := do(t, newTestServer(&fakeAnalyzer{}), postJSON("/generate-summary", payload))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No check-in data provided", body["detail"])
	}
}
