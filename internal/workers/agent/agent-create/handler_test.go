package agentcreate

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func createTestService(t *testing.T, agentStore *store.AgentStore) *Service {
	log := logger.NewTestLogger(t)
	return NewService(ServiceDependencies{
		Logger:  log,
		Factory: factory.New(appconfig.DefaultSynthesis(), log),
		Store:   agentStore,
	}, DefaultConfig())
}

func createTestInput() *Input {
	return &Input{
		OwnerID:   "owner-1",
		Archetype: string(models.ArchetypeInboundReceptionist),
		Language:  string(models.LanguageEnglish),
		BusinessContext: models.BusinessContext{
			BusinessName: "Acme Dental",
		},
	}
}

func TestInputSchema_Valid(t *testing.T) {
	variables := map[string]interface{}{
		"ownerId":   "owner-1",
		"archetype": "inbound_receptionist",
		"language":  "en",
		"businessContext": map[string]interface{}{
			"business_name": "Acme Dental",
		},
	}

	result := validation.ValidateInput(variables, GetInputSchema())
	assert.True(t, result.Valid, "errors: %v", result.GetErrorMessages())
}

func TestInputSchema_MissingRequired(t *testing.T) {
	variables := map[string]interface{}{
		"archetype": "inbound_receptionist",
	}

	result := validation.ValidateInput(variables, GetInputSchema())
	require.False(t, result.Valid)
	assert.NotEmpty(t, result.GetErrorsForField("ownerId"))
	assert.NotEmpty(t, result.GetErrorsForField("language"))
	assert.NotEmpty(t, result.GetErrorsForField("businessContext"))
}

func TestInputSchema_InvalidPersonality(t *testing.T) {
	variables := map[string]interface{}{
		"ownerId":     "owner-1",
		"archetype":   "inbound_receptionist",
		"language":    "en",
		"personality": "sassy",
		"businessContext": map[string]interface{}{
			"business_name": "Acme Dental",
		},
	}

	result := validation.ValidateInput(variables, GetInputSchema())
	require.False(t, result.Valid)
	assert.NotEmpty(t, result.GetErrorsForField("personality"))
}

func TestExecute_PersistsDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO agent_drafts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	service := createTestService(t, store.NewAgentStore(db))

	output, err := service.Execute(context.Background(), createTestInput())

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.NotEmpty(t, output.AgentID)
	assert.Equal(t, "inbound_receptionist", output.Archetype)
	assert.False(t, output.Indexed, "no indexer wired")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_UnsupportedArchetype(t *testing.T) {
	service := createTestService(t, nil)

	input := createTestInput()
	input.Archetype = "concierge"

	_, err := service.Execute(context.Background(), input)

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnsupportedArchetype, stdErr.Code)
}

func TestExecute_PersistFailureIsRetryable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO agent_drafts").
		WillReturnError(assert.AnError)

	service := createTestService(t, store.NewAgentStore(db))

	_, err = service.Execute(context.Background(), createTestInput())

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDraftPersistFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestValidateOutput(t *testing.T) {
	valid := &Output{
		Success: true,
		Message: "Agent draft x created",
		AgentID: "x",
	}
	assert.NoError(t, validateOutput(valid))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.IndexDrafts)
}
