// Package observability provides hooks for instrumenting renders.
//
// Libraries call the registered hooks; the binary decides what they do. By
// default every hook is a no-op, so packages can emit events without the
// caller wiring anything.
//
// Register hooks at startup:
//
//	observability.SetRenderHooks(&logHooks{logger: logger})
//
// Emit events from library code:
//
//	observability.Render().OnRenderStart(ctx, scene, format)
//	// ... draw and encode ...
//	observability.Render().OnRenderComplete(ctx, scene, format, len(data), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from scene rendering and output writing.
type RenderHooks interface {
	// OnRenderStart is called before a scene is drawn in format.
	OnRenderStart(ctx context.Context, scene, format string)
	// OnRenderComplete is called after drawing and encoding, with the
	// encoded size and the first error, if any.
	OnRenderComplete(ctx context.Context, scene, format string, size int, duration time.Duration, err error)
	// OnWrite is called after an output file write attempt.
	OnWrite(ctx context.Context, path string, size int, digest string, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopRenderHooks) OnWrite(context.Context, string, int, string, error) {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
