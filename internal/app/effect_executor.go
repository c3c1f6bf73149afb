package app

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/example/reflow/internal/effects"
)

// EffectExecutor interprets effects.Effect values against real I/O: the
// terminal for LogEffect, the filesystem for FileEffect, and the terminal
// again for PersistEffect (ReflowService handles the actual audit write
// itself, so PersistEffect here is only ever logged - the effect exists so
// the intent to persist is visible in the same channel as every other
// effect).
type EffectExecutor struct {
	stdout *color.Color
	stderr *color.Color
}

// NewEffectExecutor constructs an EffectExecutor with colorized log levels
// for warn/error/info output.
func NewEffectExecutor() *EffectExecutor {
	return &EffectExecutor{
		stdout: color.New(color.FgCyan),
		stderr: color.New(color.FgRed),
	}
}

// Execute dispatches eff to its concrete handler.
func (e *EffectExecutor) Execute(ctx context.Context, eff effects.Effect) error {
	switch concrete := eff.(type) {
	case effects.LogEffect:
		return e.executeLog(concrete)
	case effects.PersistEffect:
		return e.executeLog(effects.LogEffect{
			Level:   "info",
			Message: fmt.Sprintf("persisting run for scenario %s: %d change(s)", concrete.ScenarioID, concrete.ChangeCount),
		})
	case effects.FileEffect:
		return os.WriteFile(concrete.Path, concrete.Content, 0o644)
	case effects.NoEffect:
		return nil
	default:
		return fmt.Errorf("app: unknown effect %T", eff)
	}
}

func (e *EffectExecutor) executeLog(log effects.LogEffect) error {
	switch log.Level {
	case "warn", "error":
		_, err := e.stderr.Println(log.Message)
		return err
	default:
		_, err := e.stdout.Println(log.Message)
		return err
	}
}
