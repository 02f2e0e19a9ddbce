package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archdiagram/pkg/observability"
)

// logHooks reports render events at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.RenderHooks = (*logHooks)(nil)

func (h *logHooks) OnRenderStart(_ context.Context, scene, format string) {
	h.logger.Debug("rendering", "scene", scene, "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, scene, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "scene", scene, "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "scene", scene, "format", format, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnWrite(_ context.Context, path string, size int, digest string, err error) {
	if err != nil {
		h.logger.Debug("write failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("wrote file", "path", path, "bytes", size, "sha256", digest)
}
