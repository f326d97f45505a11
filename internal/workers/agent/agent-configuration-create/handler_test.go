package agentconfigurationcreate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "voiceagent-workers/internal/common/config"
	"voiceagent-workers/internal/common/errors"
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/common/validation"
	"voiceagent-workers/internal/factory"
	"voiceagent-workers/internal/models"
	"voiceagent-workers/internal/store"
)

func createTestService(t *testing.T, agentStore *store.AgentStore, cache *store.ConfigCache) *Service {
	log := logger.NewTestLogger(t)
	return NewService(ServiceDependencies{
		Logger:  log,
		Factory: factory.New(appconfig.DefaultSynthesis(), log),
		Store:   agentStore,
		Cache:   cache,
	}, DefaultConfig())
}

func TestInputSchema(t *testing.T) {
	valid := map[string]interface{}{
		"archetype": "outbound_marketing",
		"language":  "it",
	}
	result := validation.ValidateInput(valid, GetInputSchema())
	assert.True(t, result.Valid)

	missing := map[string]interface{}{"archetype": "outbound_marketing"}
	result = validation.ValidateInput(missing, GetInputSchema())
	require.False(t, result.Valid)
	assert.NotEmpty(t, result.GetErrorsForField("language"))
}

func TestExecute_SynthesizesAndPersists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO agent_configuration_drafts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	service := createTestService(t, store.NewAgentStore(db), nil)

	output, err := service.Execute(context.Background(), &Input{
		Archetype: string(models.ArchetypeInboundCustomerSupport),
		Language:  string(models.LanguageSpanish),
	})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.False(t, output.FromCache)
	require.NotNil(t, output.Configuration)
	assert.NotEmpty(t, output.Configuration.RoutingRules)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_CacheHitSkipsFactoryAndStore(t *testing.T) {
	client, redisMock := redismock.NewClientMock()

	cached := &models.AgentConfigurationDraft{
		ID:        "config-cached",
		Archetype: models.ArchetypeOutboundFollowUp,
		Language:  models.LanguageEnglish,
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	redisMock.ExpectGet("agent-config:outbound_follow_up:en").SetVal(string(raw))

	// No store wired: a cache hit must not need one.
	service := createTestService(t, nil, store.NewConfigCache(client))

	output, err := service.Execute(context.Background(), &Input{
		Archetype: string(models.ArchetypeOutboundFollowUp),
		Language:  string(models.LanguageEnglish),
	})

	require.NoError(t, err)
	assert.True(t, output.FromCache)
	assert.Equal(t, "config-cached", output.ConfigID)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestExecute_CacheErrorDegradesToSynthesis(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("agent-config:inbound_receptionist:en").SetErr(assert.AnError)

	service := createTestService(t, nil, store.NewConfigCache(client))
	// The backfill write will also fail against the mock; that is tolerated.

	output, err := service.Execute(context.Background(), &Input{
		Archetype: string(models.ArchetypeInboundReceptionist),
		Language:  string(models.LanguageEnglish),
	})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.False(t, output.FromCache)
}

func TestExecute_UnsupportedArchetype(t *testing.T) {
	service := createTestService(t, nil, nil)

	_, err := service.Execute(context.Background(), &Input{
		Archetype: "time_traveler",
		Language:  "en",
	})

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnsupportedArchetype, stdErr.Code)
}
