package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mayanum/pkg/observability"
)

func TestLoggingHooksRegistered(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	registerLoggingHooks(newLogger(&buf, log.DebugLevel))

	ctx := context.Background()
	observability.Pipeline().OnParseStart(ctx, "number", "123")
	observability.Pipeline().OnLayoutComplete(ctx, 5, time.Millisecond, nil)
	observability.Cache().OnCacheMiss(ctx, "artifact")
	observability.HTTP().OnRequest(ctx, "GET", "/healthz", "req-1")

	out := buf.String()
	for _, s := range []string{"parse start", "input=123", "artifact", "/healthz"} {
		if !strings.Contains(out, s) {
			t.Errorf("log output missing %q:\n%s", s, out)
		}
	}
}
