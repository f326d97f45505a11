// internal/store/search.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"voiceagent-workers/internal/models"
)

// DraftIndexer pushes agent drafts into the search index so operators can
// find drafts by business name or archetype.
type DraftIndexer struct {
	client *elasticsearch.Client
	index  string
}

// NewDraftIndexer creates an indexer writing into the given index.
func NewDraftIndexer(client *elasticsearch.Client, index string) *DraftIndexer {
	if index == "" {
		index = "agent-drafts"
	}
	return &DraftIndexer{client: client, index: index}
}

// IndexDraft writes the draft document, overwriting any previous version.
func (i *DraftIndexer) IndexDraft(ctx context.Context, draft *models.AgentDraft) error {
	doc, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal agent draft for indexing: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: draft.ID,
		Body:       bytes.NewReader(doc),
		Refresh:    "false",
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("failed to index agent draft %s: %w", draft.ID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("indexing agent draft %s returned %s", draft.ID, res.Status())
	}
	return nil
}
