package server

import (
	"context"
	"sync"

	"github.com/dvaughn/outreach/internal/agent"
	"github.com/dvaughn/outreach/internal/instrumentation"
)

// ServerContext holds the shared state of the MCP server
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	composer *agent.Composer
	metrics  *instrumentation.Metrics
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context around the draft composer
func NewServerContext(ctx context.Context, composer *agent.Composer, metrics *instrumentation.Metrics) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		composer: composer,
		metrics:  metrics,
	}
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Composer returns the draft composer shared by all tool handlers
func (sc *ServerContext) Composer() *agent.Composer {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.composer
}

// Metrics returns the metrics recorder
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
