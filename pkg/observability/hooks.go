// Package observability lets callers watch numeral conversion without the
// libraries depending on any metrics or tracing backend.
//
// Three hook sets exist: [PipelineHooks] for parse, layout and render
// stages, [CacheHooks] for artifact cache lookups and [HTTPHooks] for
// requests served by the API. Each defaults to a no-op. Hooks are swapped
// atomically, so they may be registered while requests are in flight,
// though normally main does it once at startup:
//
//	observability.Register(myHooks) // any mix of the three interfaces
//
// Libraries fetch the current set at the call site:
//
//	observability.Pipeline().OnParseStart(ctx, "date", raw)
//	// ... validate and decompose ...
//	observability.Pipeline().OnParseComplete(ctx, "date", raw, digitCount, duration, err)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from the conversion pipeline.
// kind is "number" or "date".
type PipelineHooks interface {
	OnParseStart(ctx context.Context, kind, input string)
	OnParseComplete(ctx context.Context, kind, input string, digitCount int, duration time.Duration, err error)

	OnLayoutStart(ctx context.Context, groupCount, digitCount int)
	OnLayoutComplete(ctx context.Context, primitiveCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives artifact cache events. keyType names the kind of
// entry, currently always "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the API server. requestID is the value
// of the X-Request-ID header.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path, requestID string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
	// OnError is called before an error body is written.
	OnError(ctx context.Context, method, path string, err error)
}

// NoopPipelineHooks ignores every event. Embed it to implement a subset.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int)                          {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)              {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// slot holds one hook set. atomic.Pointer needs a concrete type, so the
// interface value is boxed.
type slot[T any] struct{ p atomic.Pointer[T] }

func (s *slot[T]) load(fallback T) T {
	if v := s.p.Load(); v != nil {
		return *v
	}
	return fallback
}

func (s *slot[T]) store(v T) { s.p.Store(&v) }

var (
	pipelineSlot slot[PipelineHooks]
	cacheSlot    slot[CacheHooks]
	httpSlot     slot[HTTPHooks]
)

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineSlot.store(h)
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheSlot.store(h)
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		httpSlot.store(h)
	}
}

// Register installs h for every hook interface it implements and reports
// how many it matched.
func Register(h any) int {
	n := 0
	if p, ok := h.(PipelineHooks); ok {
		SetPipelineHooks(p)
		n++
	}
	if c, ok := h.(CacheHooks); ok {
		SetCacheHooks(c)
		n++
	}
	if x, ok := h.(HTTPHooks); ok {
		SetHTTPHooks(x)
		n++
	}
	return n
}

// Pipeline returns the current pipeline hooks.
func Pipeline() PipelineHooks { return pipelineSlot.load(NoopPipelineHooks{}) }

// Cache returns the current cache hooks.
func Cache() CacheHooks { return cacheSlot.load(NoopCacheHooks{}) }

// HTTP returns the current HTTP hooks.
func HTTP() HTTPHooks { return httpSlot.load(NoopHTTPHooks{}) }

// Reset restores the no-op hooks. Tests call it in t.Cleanup.
func Reset() {
	pipelineSlot.p.Store(nil)
	cacheSlot.p.Store(nil)
	httpSlot.p.Store(nil)
}
