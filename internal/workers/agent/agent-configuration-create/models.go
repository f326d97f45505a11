package agentconfigurationcreate

import (
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/factory"
	"voiceagent-workers/internal/models"
	"voiceagent-workers/internal/store"
)

type Input struct {
	Archetype string `json:"archetype"`
	Language  string `json:"language"`
}

type Output struct {
	Success       bool                            `json:"success"`
	Message       string                          `json:"message"`
	ConfigID      string                          `json:"configId,omitempty"`
	FromCache     bool                            `json:"fromCache"`
	Configuration *models.AgentConfigurationDraft `json:"configuration,omitempty"`
}

type ServiceDependencies struct {
	Logger  logger.Logger
	Factory *factory.Factory
	Store   *store.AgentStore
	Cache   *store.ConfigCache
}
