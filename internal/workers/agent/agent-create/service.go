package agentcreate

import (
	"context"
	"fmt"

	"voiceagent-workers/internal/common/errors"
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/factory"
	"voiceagent-workers/internal/models"
	"voiceagent-workers/internal/store"
)

type Service struct {
	logger  logger.Logger
	factory *factory.Factory
	store   *store.AgentStore
	indexer *store.DraftIndexer
	config  *Config
}

func NewService(deps ServiceDependencies, cfg *Config) *Service {
	return &Service{
		logger:  deps.Logger,
		factory: deps.Factory,
		store:   deps.Store,
		indexer: deps.Indexer,
		config:  cfg,
	}
}

// Execute synthesizes an agent draft, persists it, and indexes it for search.
// Indexing is best effort: a search outage should not block agent creation,
// so index failures are logged and reported in the output instead of failing
// the job.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	req := models.CreateAgentRequest{
		Archetype:       models.Archetype(input.Archetype),
		Language:        models.Language(input.Language),
		Name:            input.Name,
		Description:     input.Description,
		Personality:     models.Personality(input.Personality),
		BusinessContext: input.BusinessContext,
	}

	draft, err := s.factory.CreateAgent(req, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.SaveDraft(ctx, draft); err != nil {
			return nil, errors.NewDraftPersistFailedError(err)
		}
	}

	indexed := false
	if s.indexer != nil && s.config.IndexDrafts {
		if err := s.indexer.IndexDraft(ctx, draft); err != nil {
			indexErr := errors.NewDraftIndexFailedError(err)
			s.logger.WithError(indexErr).Warn("draft indexing failed, continuing", map[string]interface{}{
				"agentId": draft.ID,
			})
		} else {
			indexed = true
		}
	}

	return &Output{
		Success:   true,
		Message:   fmt.Sprintf("Agent draft %s created", draft.ID),
		AgentID:   draft.ID,
		Archetype: string(draft.Archetype),
		Language:  string(draft.Language),
		Indexed:   indexed,
	}, nil
}
