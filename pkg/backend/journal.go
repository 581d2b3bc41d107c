package backend

import (
	"context"
	"fmt"
	"net/http"

	journaldomain "mindcare-client/internal/journal/domain"
)

// JournalClient talks to the journal service. All operations are
// authenticated.
type JournalClient struct {
	rest *restClient
}

func NewJournalClient(baseURL string) *JournalClient {
	return &JournalClient{rest: newRESTClient(baseURL)}
}

// CreateEntryRequest carries the entry content together with the label and
// score obtained from the sentiment service beforehand.
type CreateEntryRequest struct {
	Content       string  `json:"content"`
	Label         string  `json:"label"`
	SuicidalScore float64 `json:"suicidalScore"`
}

// ListEntries returns all journal entries. An empty response body
// normalizes to an empty list.
func (c *JournalClient) ListEntries(ctx context.Context, token string) ([]journaldomain.JournalEntry, error) {
	entries := []journaldomain.JournalEntry{}
	if err := c.rest.doJSON(ctx, http.MethodGet, "/journal", token, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *JournalClient) CreateEntry(ctx context.Context, token string, req CreateEntryRequest) (*journaldomain.JournalEntry, error) {
	var entry journaldomain.JournalEntry
	if err := c.rest.doJSON(ctx, http.MethodPost, "/journal", token, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *JournalClient) DeleteEntry(ctx context.Context, token string, id int64) error {
	return c.rest.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/journal/%d", id), token, nil, nil)
}
