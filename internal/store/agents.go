// Package store persists synthesized drafts. Drafts are stored as JSON
// documents with a few indexed columns; the factory output is the source of
// truth and the store never reshapes it.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"voiceagent-workers/internal/models"
)

// AgentStore reads and writes agent drafts in PostgreSQL.
type AgentStore struct {
	db *sql.DB
}

// NewAgentStore creates an AgentStore on the given connection.
func NewAgentStore(db *sql.DB) *AgentStore {
	return &AgentStore{db: db}
}

// SaveDraft inserts an agent draft.
func (s *AgentStore) SaveDraft(ctx context.Context, draft *models.AgentDraft) error {
	doc, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal agent draft: %w", err)
	}

	query := `
		INSERT INTO agent_drafts (id, owner_id, archetype, language, status, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = s.db.ExecContext(ctx, query,
		draft.ID,
		draft.OwnerID,
		string(draft.Archetype),
		string(draft.Language),
		string(draft.Status),
		doc,
		draft.CreatedAt,
		draft.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert agent draft: %w", err)
	}
	return nil
}

// GetDraft loads an agent draft by id. Returns sql.ErrNoRows when absent.
func (s *AgentStore) GetDraft(ctx context.Context, id string) (*models.AgentDraft, error) {
	query := `SELECT document FROM agent_drafts WHERE id = $1`

	var doc []byte
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&doc); err != nil {
		return nil, err
	}

	var draft models.AgentDraft
	if err := json.Unmarshal(doc, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal agent draft %s: %w", id, err)
	}
	return &draft, nil
}

// SaveConfigurationDraft inserts a configuration draft.
func (s *AgentStore) SaveConfigurationDraft(ctx context.Context, draft *models.AgentConfigurationDraft) error {
	doc, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration draft: %w", err)
	}

	query := `
		INSERT INTO agent_configuration_drafts (id, archetype, language, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.db.ExecContext(ctx, query,
		draft.ID,
		string(draft.Archetype),
		string(draft.Language),
		doc,
		draft.CreatedAt,
		draft.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert configuration draft: %w", err)
	}
	return nil
}
