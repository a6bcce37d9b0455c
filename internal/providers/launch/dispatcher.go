// Package launch starts applications on behalf of the drawer.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/termdeck/termdeck/internal/shared/types"
)

// ErrNoCommand is returned when a record carries no exec command line.
var ErrNoCommand = errors.New("record has no exec command")

// Dispatcher launches a catalog record.
type Dispatcher interface {
	Launch(ctx context.Context, record types.AppRecord) error
}

// CommandDispatcher launches records by starting their exec command line in
// a new session, detached from the daemon. The child outlives daemon
// restarts.
type CommandDispatcher struct{}

// NewCommandDispatcher creates a process-spawning dispatcher.
func NewCommandDispatcher() *CommandDispatcher {
	return &CommandDispatcher{}
}

// Launch starts the record's command. The context gates dispatch, not the
// lifetime of the launched process.
func (d *CommandDispatcher) Launch(ctx context.Context, record types.AppRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fields := strings.Fields(record.Exec)
	if len(fields) == 0 {
		return fmt.Errorf("%w: %s", ErrNoCommand, record.Identity)
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Env = os.Environ()
	if home := os.Getenv("HOME"); home != "" {
		cmd.Dir = home
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", record.Identity, err)
	}

	// Reap the child when it exits so it never lingers as a zombie.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
