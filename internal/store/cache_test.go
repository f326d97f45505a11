package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/models"
)

func createTestConfigDraft() *models.AgentConfigurationDraft {
	return &models.AgentConfigurationDraft{
		ID:        "config-1",
		Archetype: models.ArchetypeOutboundFollowUp,
		Language:  models.LanguageSpanish,
	}
}

func TestConfigCache_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewConfigCache(client)

	want := createTestConfigDraft()
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("agent-config:outbound_follow_up:es").SetVal(string(raw))

	got, err := cache.Get(context.Background(), want.Archetype, want.Language)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigCache_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewConfigCache(client)

	mock.ExpectGet("agent-config:inbound_receptionist:en").RedisNil()

	got, err := cache.Get(context.Background(), models.ArchetypeInboundReceptionist, models.LanguageEnglish)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestConfigCache_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewConfigCache(client)

	draft := createTestConfigDraft()
	raw, err := json.Marshal(draft)
	require.NoError(t, err)

	mock.ExpectSet("agent-config:outbound_follow_up:es", raw, configCacheTTL).SetVal("OK")

	err = cache.Set(context.Background(), draft)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigCache_CorruptEntry(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewConfigCache(client)

	mock.ExpectGet("agent-config:outbound_follow_up:es").SetVal("{not json")

	_, err := cache.Get(context.Background(), models.ArchetypeOutboundFollowUp, models.LanguageSpanish)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}
