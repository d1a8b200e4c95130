package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"questshare/internal/queue"
	"questshare/internal/storage"
)

// Processor is plugged into the asynq worker loop.
type Processor struct {
	store storage.Storage
}

// NewProcessor constructs a worker processor.
func NewProcessor(store storage.Storage) *Processor {
	return &Processor{store: store}
}

// Handler registers the cleanup job handler.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.CleanupBlobTask, p.handleCleanup)
	return mux
}

func (p *Processor) handleCleanup(ctx context.Context, task *asynq.Task) error {
	var payload queue.CleanupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if payload.ObjectKey == "" {
		return fmt.Errorf("cleanup payload missing object key")
	}
	if err := p.store.Delete(ctx, payload.ObjectKey); err != nil {
		log.Printf("cleanup failed for %s: %v", payload.ObjectKey, err)
		return err
	}
	return nil
}
