package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/models"
)

func createTestDraft() *models.AgentDraft {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.AgentDraft{
		ID:        "draft-1",
		OwnerID:   "owner-1",
		Archetype: models.ArchetypeInboundReceptionist,
		Language:  models.LanguageEnglish,
		Name:      "AI Receptionist",
		Status:    models.AgentStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSaveDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	draft := createTestDraft()

	mock.ExpectExec("INSERT INTO agent_drafts").
		WithArgs(
			draft.ID,
			draft.OwnerID,
			string(draft.Archetype),
			string(draft.Language),
			string(draft.Status),
			sqlmock.AnyArg(),
			draft.CreatedAt,
			draft.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewAgentStore(db)
	err = store.SaveDraft(context.Background(), draft)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDraft_InsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO agent_drafts").
		WillReturnError(sql.ErrConnDone)

	store := NewAgentStore(db)
	err = store.SaveDraft(context.Background(), createTestDraft())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert agent draft")
}

func TestGetDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	want := createTestDraft()
	doc, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT document FROM agent_drafts").
		WithArgs("draft-1").
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(doc))

	store := NewAgentStore(db)
	got, err := store.GetDraft(context.Background(), "draft-1")

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Archetype, got.Archetype)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDraft_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT document FROM agent_drafts").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	store := NewAgentStore(db)
	_, err = store.GetDraft(context.Background(), "missing")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSaveConfigurationDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	draft := &models.AgentConfigurationDraft{
		ID:        "config-1",
		Archetype: models.ArchetypeOutboundMarketing,
		Language:  models.LanguageItalian,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO agent_configuration_drafts").
		WithArgs(
			draft.ID,
			string(draft.Archetype),
			string(draft.Language),
			sqlmock.AnyArg(),
			draft.CreatedAt,
			draft.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewAgentStore(db)
	err = store.SaveConfigurationDraft(context.Background(), draft)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
