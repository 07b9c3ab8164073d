package internal

import (
	"context"
	"encoding/json"
	"time"

	"okaziyo-api-io/api/pkg/util"
)

var CHANNEL_GLOBAL_CACHE = "GLOBAL_CACHE"

type CacheMessageType string

const (
	CacheInvalidateCategory   CacheMessageType = "category.invalidate"
	CacheInvalidateCategories CacheMessageType = "categories.invalidate"

	CacheInvalidateItem  CacheMessageType = "item.invalidate"
	CacheInvalidateItems CacheMessageType = "items.invalidate"

	CacheInvalidateJob         CacheMessageType = "job.invalidate"
	CacheInvalidateJobs        CacheMessageType = "jobs.invalidate"
	CacheInvalidateScholarship CacheMessageType = "scholarship.invalidate"
	CacheInvalidateMultijob    CacheMessageType = "multijob.invalidate"
)

type CacheMessage struct {
	Type      CacheMessageType `json:"type"`
	Payload   string           `json:"payload"`
	Timestamp int64            `json:"timestamp"`
}

// PublishCacheMessage publishes a cache invalidation message to Redis pub/sub as JSON.
// Frontend edge caches subscribe to CHANNEL_GLOBAL_CACHE and evict on receipt.
func PublishCacheMessage(ctx context.Context, messageType CacheMessageType, payload string) error {
	cacheMessage := CacheMessage{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}

	messageJSON, err := json.Marshal(cacheMessage)
	if err != nil {
		util.LogError("Failed to marshal cache message", err)
		return err
	}

	err = util.REDIS.Publish(ctx, CHANNEL_GLOBAL_CACHE, string(messageJSON)).Err()
	if err != nil {
		util.LogError("Failed to publish cache message", err)
		return err
	}

	return nil
}
