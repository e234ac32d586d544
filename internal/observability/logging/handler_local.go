//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// gcpTraceAttrs adds nothing outside Google Cloud.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
