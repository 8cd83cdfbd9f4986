package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSteps_AllSucceed(t *testing.T) {
	var order []string

	steps := []step{
		{name: "first", critical: true, run: func(ctx context.Context) error {
			order = append(order, "first")
			return nil
		}},
		{name: "second", run: func(ctx context.Context) error {
			order = append(order, "second")
			return nil
		}},
	}

	failed, err := runSteps(context.Background(), newTestLogger(), steps)
	require.NoError(t, err)
	assert.Empty(t, failed)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRunSteps_CriticalFailureAborts(t *testing.T) {
	ran := false

	steps := []step{
		{name: "write", critical: true, run: func(ctx context.Context) error {
			return errors.New("write failed")
		}},
		{name: "notify", run: func(ctx context.Context) error {
			ran = true
			return nil
		}},
	}

	failed, err := runSteps(context.Background(), newTestLogger(), steps)
	require.Error(t, err)
	assert.Empty(t, failed)
	assert.False(t, ran)
}

func TestRunSteps_BestEffortFailuresCollected(t *testing.T) {
	steps := []step{
		{name: "write", critical: true, run: func(ctx context.Context) error {
			return nil
		}},
		{name: "cleanup", run: func(ctx context.Context) error {
			return errors.New("cleanup failed")
		}},
		{name: "notify", run: func(ctx context.Context) error {
			return errors.New("notify failed")
		}},
	}

	failed, err := runSteps(context.Background(), newTestLogger(), steps)
	require.NoError(t, err)
	assert.Equal(t, []string{"cleanup", "notify"}, failed)
}
