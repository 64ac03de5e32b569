package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// GetClient returns the global Client, which can be reconfigured with SetClient.
// It's safe for concurrent use.
func GetClient(_ context.Context) *asynq.Client {
	globalMu.RLock()
	defer globalMu.RUnlock()

	return globalClient
}

// SetClient replaces the global Client, and returns a
// function to restore the previous value. It's safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}
