package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mayanum/pkg/observability"
)

// loggingHooks traces pipeline, cache and HTTP events at debug level.
type loggingHooks struct {
	logger *log.Logger
}

// registerLoggingHooks installs loggingHooks for every event source.
func registerLoggingHooks(l *log.Logger) {
	observability.Register(loggingHooks{logger: l})
}

func (h loggingHooks) OnParseStart(_ context.Context, kind, input string) {
	h.logger.Debug("parse start", "kind", kind, "input", input)
}

func (h loggingHooks) OnParseComplete(_ context.Context, kind, input string, digits int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "kind", kind, "input", input, "error", err)
		return
	}
	h.logger.Debug("parse done", "kind", kind, "digits", digits, "duration", d)
}

func (h loggingHooks) OnLayoutStart(_ context.Context, groups, digits int) {
	h.logger.Debug("layout start", "groups", groups, "digits", digits)
}

func (h loggingHooks) OnLayoutComplete(_ context.Context, primitives int, d time.Duration, _ error) {
	h.logger.Debug("layout done", "primitives", primitives, "duration", d)
}

func (h loggingHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h loggingHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "duration", d)
}

func (h loggingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h loggingHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h loggingHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h loggingHooks) OnRequest(_ context.Context, method, path, requestID string) {
	h.logger.Debug("request start", "method", method, "path", path, "request_id", requestID)
}

// The API server already logs every response at info level.
func (h loggingHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

func (h loggingHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Debug("request error", "method", method, "path", path, "error", err)
}

var (
	_ observability.PipelineHooks = loggingHooks{}
	_ observability.CacheHooks    = loggingHooks{}
	_ observability.HTTPHooks     = loggingHooks{}
)
