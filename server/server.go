// Package server exposes the mood pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	cfg "github.com/mental-health-mirror/mood-core/config"
	"github.com/mental-health-mirror/mood-core/mood"
	"github.com/mental-health-mirror/mood-core/orchestrator"
	"github.com/mental-health-mirror/mood-core/recommend"
)

type Analyzer interface {
	AnalyzeVoice(ctx context.Context, data []byte, filename string) (*orchestrator.VoiceAnalysis, error)
	AnalyzeText(ctx context.Context, text string) (mood.TextEstimate, error)
}

type Recommender interface {
	Select(label string, energyLevel float64, detectedEmotions []string) []recommend.Recommendation
}

type Server struct {
	cfg         *cfg.Root
	analyzer    Analyzer
	recommender Recommender
	log         logrus.FieldLogger
	engine      *gin.Engine
}

func New(c *cfg.Root, a Analyzer, r Recommender, log logrus.FieldLogger) *Server {
	s := &Server{cfg: c, analyzer: a, recommender: r, log: log}

	e := gin.New()
	e.Use(gin.Recovery(), RequestID(), Logger(log), CORS())
	e.GET("/", s.root)
	e.POST("/analyze-voice", s.analyzeVoice)
	e.POST("/analyze-text", s.analyzeText)
	e.POST("/generate-recommendations", s.generateRecommendations)
	e.POST("/generate-summary", s.generateSummary)
	s.engine = e
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.engine,
		ReadTimeout:  cfg.DurSeconds(s.cfg.Server.ReadTimeout),
		WriteTimeout: cfg.DurSeconds(s.cfg.Server.WriteTimeout),
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", srv.Addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.DurSeconds(10))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
