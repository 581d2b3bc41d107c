package backend

import (
	"context"
	"net/http"

	journaldomain "mindcare-client/internal/journal/domain"
)

// SentimentClient talks to the text-analysis service. The endpoint is
// unauthenticated.
type SentimentClient struct {
	rest *restClient
}

func NewSentimentClient(baseURL string) *SentimentClient {
	return &SentimentClient{rest: newRESTClient(baseURL)}
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

// AnalyzeText classifies a piece of text and reports whether support
// resources should be recommended.
func (c *SentimentClient) AnalyzeText(ctx context.Context, text string) (*journaldomain.SupportDecision, error) {
	var decision journaldomain.SupportDecision
	if err := c.rest.doJSON(ctx, http.MethodPost, "/analyze_text", "", analyzeTextRequest{Text: text}, &decision); err != nil {
		return nil, err
	}
	return &decision, nil
}
