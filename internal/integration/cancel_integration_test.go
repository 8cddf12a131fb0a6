package integration

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"contigsampler/internal/app"
)

func TestCancelledGenerateExit130(t *testing.T) {
	dir, manifest := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	argv := append(baseArgs(manifest), "generate",
		"--out-train", filepath.Join(dir, "train.parquet"),
		"--out-val", filepath.Join(dir, "val.parquet"))
	if code := app.RunContext(ctx, argv, io.Discard, io.Discard); code != app.ExitCanceled {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
