package clients

import (
	"context"
	"sort"
)

// --- Emotion (/detect) ---
type EmoReq struct {
	Text string `json:"text"`
}
type EmoScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
type EmoResp struct {
	Emotions        []EmoScore `json:"emotions"`
	DominantEmotion string     `json:"dominant_emotion"`
}

func (h *HTTP) Emotion(ctx context.Context, url, text string) (*EmoResp, error) {
	var out EmoResp
	if err := h.postJSON(ctx, "emotion", url+"/detect", EmoReq{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ranked orders scores by confidence, highest first, and keeps at most
// topK labels. topK <= 0 keeps all of them.
func Ranked(scores []EmoScore, topK int) []string {
	sorted := make([]EmoScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	if topK > 0 && len(sorted) > topK {
		sorted = sorted[:topK]
	}
	labels := make([]string, 0, len(sorted))
	for _, s := range sorted {
		labels = append(labels, s.Label)
	}
	return labels
}

// EmotionService binds the emotion endpoint to a base URL and a top-k cut.
type EmotionService struct {
	h    *HTTP
	url  string
	topK int
}

func NewEmotionService(h *HTTP, url string, topK int) *EmotionService {
	return &EmotionService{h: h, url: url, topK: topK}
}

// Detect returns emotion labels ranked by confidence descending.
func (s *EmotionService) Detect(ctx context.Context, text string) ([]string, error) {
	resp, err := s.h.Emotion(ctx, s.url, text)
	if err != nil {
		return nil, err
	}
	return Ranked(resp.Emotions, s.topK), nil
}
