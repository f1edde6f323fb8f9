package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := WithContext(context.Background(), &base)

	ctx = WithRequestID(ctx, "abc-123")

	if got := RequestID(ctx); got != "abc-123" {
		t.Fatalf("RequestID = %q", got)
	}

	FromContext(ctx).Info().Msg("hello")
	if !strings.Contains(buf.String(), `"request_id":"abc-123"`) {
		t.Fatalf("expected request id in log line, got %s", buf.String())
	}
}

func TestRequestIDUnknown(t *testing.T) {
	if got := RequestID(context.Background()); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}
