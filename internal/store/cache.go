// internal/store/cache.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"voiceagent-workers/internal/models"
)

// Configuration drafts for the same archetype/language pair are identical
// apart from ids and timestamps, so cache hits are safe to serve as-is.
const configCacheTTL = 1 * time.Hour

// ConfigCache is a read-through cache for configuration drafts.
type ConfigCache struct {
	client *redis.Client
}

// NewConfigCache creates a cache on the given Redis client.
func NewConfigCache(client *redis.Client) *ConfigCache {
	return &ConfigCache{client: client}
}

func cacheKey(archetype models.Archetype, language models.Language) string {
	return fmt.Sprintf("agent-config:%s:%s", archetype, language)
}

// Get returns the cached draft or (nil, nil) on a miss.
func (c *ConfigCache) Get(ctx context.Context, archetype models.Archetype, language models.Language) (*models.AgentConfigurationDraft, error) {
	raw, err := c.client.Get(ctx, cacheKey(archetype, language)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config cache get failed: %w", err)
	}

	var draft models.AgentConfigurationDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("config cache entry corrupt: %w", err)
	}
	return &draft, nil
}

// Set stores the draft with the cache TTL.
func (c *ConfigCache) Set(ctx context.Context, draft *models.AgentConfigurationDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration draft for cache: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(draft.Archetype, draft.Language), raw, configCacheTTL).Err(); err != nil {
		return fmt.Errorf("config cache set failed: %w", err)
	}
	return nil
}
