package launch

import (
	"context"
	"errors"
	"testing"

	"github.com/termdeck/termdeck/internal/shared/types"
)

func TestLaunchStartsCommand(t *testing.T) {
	d := NewCommandDispatcher()
	record := types.AppRecord{Identity: "sh.test", Exec: "sh -c true"}

	if err := d.Launch(context.Background(), record); err != nil {
		t.Fatalf("Launch: %v", err)
	}
}

func TestLaunchRejectsEmptyCommand(t *testing.T) {
	d := NewCommandDispatcher()
	record := types.AppRecord{Identity: "com.no.exec"}

	if err := d.Launch(context.Background(), record); !errors.Is(err, ErrNoCommand) {
		t.Errorf("Launch error = %v, want ErrNoCommand", err)
	}
}

func TestLaunchUnknownBinary(t *testing.T) {
	d := NewCommandDispatcher()
	record := types.AppRecord{Identity: "com.missing", Exec: "termdeck-no-such-binary"}

	if err := d.Launch(context.Background(), record); err == nil {
		t.Error("Launch of a missing binary succeeded")
	}
}

func TestLaunchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewCommandDispatcher()
	if err := d.Launch(ctx, types.AppRecord{Identity: "sh.test", Exec: "sh -c true"}); err == nil {
		t.Error("Launch with cancelled context succeeded")
	}
}
