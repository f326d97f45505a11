package agentconfigurationcreate

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
	cache   *store.ConfigCache
	config  *Config
}

func NewService(deps ServiceDependencies, cfg *Config) *Service {
	return &Service{
		logger:  deps.Logger,
		factory: deps.Factory,
		store:   deps.Store,
		cache:   deps.Cache,
		config:  cfg,
	}
}

// Execute returns the configuration draft for the archetype/language pair.
// Cache first, factory on a miss, then persist and backfill the cache. Cache
// errors degrade to a synthesis, they never fail the job.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	archetype := models.Archetype(input.Archetype)
	language := models.Language(input.Language)

	if s.cache != nil && s.config.CacheEnabled {
		cached, err := s.cache.Get(ctx, archetype, language)
		if err != nil {
			cacheErr := errors.NewDraftCacheFailedError(err)
			s.logger.WithError(cacheErr).Warn("config cache read failed, synthesizing", map[string]interface{}{
				"archetype": input.Archetype,
				"language":  input.Language,
			})
		} else if cached != nil {
			return &Output{
				Success:       true,
				Message:       fmt.Sprintf("Configuration %s served from cache", cached.ID),
				ConfigID:      cached.ID,
				FromCache:     true,
				Configuration: cached,
			}, nil
		}
	}

	draft, err := s.factory.CreateAgentConfiguration(archetype, language)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.SaveConfigurationDraft(ctx, draft); err != nil {
			return nil, errors.NewDraftPersistFailedError(err)
		}
	}

	if s.cache != nil && s.config.CacheEnabled {
		if err := s.cache.Set(ctx, draft); err != nil {
			cacheErr := errors.NewDraftCacheFailedError(err)
			s.logger.WithError(cacheErr).Warn("config cache write failed", map[string]interface{}{
				"configId": draft.ID,
			})
		}
	}

	return &Output{
		Success:       true,
		Message:       fmt.Sprintf("Configuration draft %s created", draft.ID),
		ConfigID:      draft.ID,
		FromCache:     false,
		Configuration: draft,
	}, nil
}
