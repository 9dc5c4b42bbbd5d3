package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

const templateListKey = "templates:list"

// TemplateCacheRepository caches the template list in Redis. The cache
// is read-through: any miss or error falls back to postgres.
type TemplateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewTemplateCacheRepository creates a new repository instance with TTL.
func NewTemplateCacheRepository(client *redis.Client, expiration time.Duration) *TemplateCacheRepository {
	return &TemplateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached template list.
func (r *TemplateCacheRepository) Get(ctx context.Context) ([]models.TemplateDB, error) {
	val, err := r.client.Get(ctx, templateListKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", templateListKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("template list not cached")
		}
		return nil, err
	}

	var templates []models.TemplateDB
	if err := json.Unmarshal([]byte(val), &templates); err != nil {
		logger.Log.Infow(
			"key", templateListKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", templateListKey,
		"result", len(templates),
		"error", nil,
	)

	return templates, nil
}

// Set caches the template list with expiration.
func (r *TemplateCacheRepository) Set(ctx context.Context, templates []models.TemplateDB) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, templateListKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", templateListKey,
		"result", len(templates),
		"error", err,
	)

	return err
}

// Invalidate drops the cached list after a template mutation.
func (r *TemplateCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, templateListKey).Err()

	logger.Log.Infow(
		"key", templateListKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}
