package agentcreate

import (
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/factory"
	"voiceagent-workers/internal/models"
	"voiceagent-workers/internal/store"
)

type Input struct {
	OwnerID         string                 `json:"ownerId"`
	Archetype       string                 `json:"archetype"`
	Language        string                 `json:"language"`
	Name            string                 `json:"name,omitempty"`
	Description     string                 `json:"description,omitempty"`
	Personality     string                 `json:"personality,omitempty"`
	BusinessContext models.BusinessContext `json:"businessContext"`
}

type Output struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	AgentID   string `json:"agentId,omitempty"`
	Archetype string `json:"archetype,omitempty"`
	Language  string `json:"language,omitempty"`
	Indexed   bool   `json:"indexed"`
}

type ServiceDependencies struct {
	Logger  logger.Logger
	Factory *factory.Factory
	Store   *store.AgentStore
	Indexer *store.DraftIndexer
}
