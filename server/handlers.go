package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mental-health-mirror/mood-core/mood"
	"github.com/mental-health-mirror/mood-core/summary"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Mental Health Mirror AI Service is running"})
}

func (s *Server) analyzeVoice(c *gin.Context) {
	limit := int64(s.cfg.Server.MaxUploadMB) << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fh, err := c.FormFile("audio")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			detail(c, http.StatusRequestEntityTooLarge, "Audio file is too large")
			return
		}
		detail(c, http.StatusBadRequest, "Audio file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		s.fail(c, "Error analyzing voice", err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		s.fail(c, "Error analyzing voice", err)
		return
	}

	res, err := s.analyzer.AnalyzeVoice(c.Request.Context(), data, fh.Filename)
	if err != nil {
		s.fail(c, "Error analyzing voice", err)
		return
	}
	c.JSON(http.StatusOK, res.Result)
}

func (s *Server) analyzeText(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := mood.ValidateText(req.Text); err != nil {
		detail(c, http.StatusBadRequest, "Text is required")
		return
	}

	est, err := s.analyzer.AnalyzeText(c.Request.Context(), req.Text)
	if err != nil {
		s.fail(c, "Error analyzing text", err)
		return
	}
	c.JSON(http.StatusOK, est)
}

func (s *Server) generateRecommendations(c *gin.Context) {
	var req struct {
		UserID           string   `json:"userId"`
		Mood             string   `json:"mood"`
		EnergyLevel      float64  `json:"energyLevel"`
		DetectedEmotions []string `json:"detectedEmotions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" || req.Mood == "" || req.EnergyLevel == 0 {
		detail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	recs := s.recommender.Select(req.Mood, req.EnergyLevel, req.DetectedEmotions)
	s.log.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"mood":       req.Mood,
		"count":      len(recs),
	}).Debug("recommendations selected")
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (s *Server) generateSummary(c *gin.Context) {
	var req struct {
		CheckIns []summary.CheckIn `json:"checkIns"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.CheckIns) == 0 {
		detail(c, http.StatusBadRequest, "No check-in data provided")
		return
	}

	w, err := summary.Summarize(req.CheckIns)
	if err != nil {
		s.fail(c, "Error generating summary", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"insights":        w.Insights,
		"recommendations": w.Recommendations,
	})
}

// fail maps client-input errors to 400 and everything else to 500.
func (s *Server) fail(c *gin.Context, prefix string, err error) {
	status := http.StatusInternalServerError
	if mood.IsClientError(err) {
		status = http.StatusBadRequest
	}
	s.log.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"status":     status,
	}).WithError(err).Warn(prefix)
	detail(c, status, prefix+": "+err.Error())
}

func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}
