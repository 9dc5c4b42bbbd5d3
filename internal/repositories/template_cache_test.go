package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-mailer/internal/models"
)

func TestTemplateCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewTemplateCacheRepository(rdb, 2*time.Second)

	subject := "Welcome"
	templates := []models.TemplateDB{
		{TemplateID: uuid.New(), Name: "welcome", Subject: &subject, Body: "Hello!", UpdatedAt: time.Now().UTC().Truncate(time.Second)},
	}

	t.Run("Set and Get template list", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, templates))

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, templates[0].TemplateID, got[0].TemplateID)
		assert.Equal(t, templates[0].Name, got[0].Name)
	})

	t.Run("Invalidate drops the list", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, templates))
		assert.NoError(t, repo.Invalidate(ctx))

		_, err := repo.Get(ctx)
		assert.Error(t, err)
	})

	t.Run("Get after expiry misses", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, templates))
		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx)
		assert.Error(t, err)
	})
}
