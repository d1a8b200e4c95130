package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// CleanupBlobTask is scheduled when an upload wrote its blob but the
	// record write failed and the inline rollback delete also failed.
	// The worker retries the delete so no orphaned object lingers.
	CleanupBlobTask = "blob:cleanup"
)

// CleanupPayload identifies the orphaned object to remove.
type CleanupPayload struct {
	ObjectKey string `json:"object_key"`
}

// Enqueuer wraps an asynq client behind the narrow interface the services need.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer constructs an Enqueuer over an asynq client.
func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueCleanup schedules removal of an orphaned object.
func (e *Enqueuer) EnqueueCleanup(ctx context.Context, objectKey string) error {
	return EnqueueCleanup(ctx, e.client, CleanupPayload{ObjectKey: objectKey})
}

// EnqueueCleanup enqueues a blob cleanup job.
func EnqueueCleanup(ctx context.Context, client *asynq.Client, payload CleanupPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	task := asynq.NewTask(CleanupBlobTask, data)
	if _, err := client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("enqueue cleanup task: %w", err)
	}
	return nil
}
