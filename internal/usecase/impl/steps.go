package impl

import (
	"context"
	"log/slog"
)

// step is one unit of work in an ordered side-effect sequence. Critical steps
// abort the sequence on failure; best-effort steps only log.
type step struct {
	name     string
	critical bool
	run      func(ctx context.Context) error
}

// runSteps executes steps in order. The error of the first failing critical
// step is returned and no later step runs. Best-effort failures are logged at
// Warn and collected by name so the caller can reflect them in its response
// message.
func runSteps(ctx context.Context, logger *slog.Logger, steps []step) ([]string, error) {
	var failed []string

	for _, s := range steps {
		err := s.run(ctx)
		if err == nil {
			continue
		}

		if s.critical {
			return failed, err
		}

		logger.Warn("best-effort step failed", "step", s.name, "error", err)
		failed = append(failed, s.name)
	}

	return failed, nil
}
