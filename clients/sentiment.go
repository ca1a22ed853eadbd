package clients

import (
	"context"

	"github.com/mental-health-mirror/mood-core/mood"
)

// --- Sentiment (/sentiment) ---
type SentimentReq struct {
	Text string `json:"text"`
}
type SentimentResp struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (h *HTTP) Sentiment(ctx context.Context, url, text string) (*SentimentResp, error) {
	var out SentimentResp
	if err := h.postJSON(ctx, "sentiment", url+"/sentiment", SentimentReq{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SentimentService binds the sentiment endpoint to a base URL.
type SentimentService struct {
	h   *HTTP
	url string
}

func NewSentimentService(h *HTTP, url string) *SentimentService {
	return &SentimentService{h: h, url: url}
}

func (s *SentimentService) Classify(ctx context.Context, text string) (mood.Sentiment, error) {
	resp, err := s.h.Sentiment(ctx, s.url, text)
	if err != nil {
		return mood.Sentiment{}, err
	}
	return mood.Sentiment{Label: resp.Label, Confidence: resp.Score}, nil
}
