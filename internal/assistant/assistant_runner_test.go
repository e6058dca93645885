package assistant_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"geo-attend/internal/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_NewerTaskSupersedesOlder(t *testing.T) {
	ctx := context.Background()
	r := assistant.NewRunner(0)
	defer r.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	var (
		staleErr    error
		staleCtxErr error
	)
	go func() {
		defer close(done)
		_, staleErr = assistant.Run(ctx, r, assistant.KindAnalysis, func(taskCtx context.Context) (string, error) {
			close(started)
			<-release
			staleCtxErr = taskCtx.Err()
			return "stale", nil
		})
	}()

	<-started
	assert.True(t, r.Pending(assistant.KindAnalysis))

	fresh, err := assistant.Run(ctx, r, assistant.KindAnalysis, func(context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", fresh)

	close(release)
	<-done

	assert.ErrorIs(t, staleErr, assistant.ErrSuperseded)
	assert.ErrorIs(t, staleCtxErr, context.Canceled)
	assert.False(t, r.Pending(assistant.KindAnalysis))
}

func TestRunner_KindsAreIndependent(t *testing.T) {
	ctx := context.Background()
	r := assistant.NewRunner(0)
	defer r.Close()

	started := make(chan struct{})
	release := make(chan struct{})

	var (
		wg        sync.WaitGroup
		lookupErr error
		lookupVal string
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		lookupVal, lookupErr = assistant.Run(ctx, r, assistant.KindOfficeLookup, func(context.Context) (string, error) {
			close(started)
			<-release
			return "lookup", nil
		})
	}()

	<-started
	analysis, err := assistant.Run(ctx, r, assistant.KindAnalysis, func(context.Context) (string, error) {
		return "analysis", nil
	})
	close(release)
	wg.Wait()

	require.NoError(t, err)
	assert.Equal(t, "analysis", analysis)
	require.NoError(t, lookupErr)
	assert.Equal(t, "lookup", lookupVal)
}

func TestRunner_CloseCancelsInFlightTasks(t *testing.T) {
	ctx := context.Background()
	r := assistant.NewRunner(0)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := assistant.Run(ctx, r, assistant.KindOfficeLookup, func(taskCtx context.Context) (string, error) {
			close(started)
			<-taskCtx.Done()
			return "", taskCtx.Err()
		})
		done <- err
	}()

	<-started
	r.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, assistant.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("task was not cancelled by Close")
	}

	called := false
	_, err := assistant.Run(ctx, r, assistant.KindOfficeLookup, func(context.Context) (string, error) {
		called = true
		return "", nil
	})
	assert.ErrorIs(t, err, assistant.ErrClosed)
	assert.False(t, called)
}

func TestRunner_Timeout(t *testing.T) {
	r := assistant.NewRunner(10 * time.Millisecond)
	defer r.Close()

	_, err := assistant.Run(context.Background(), r, assistant.KindAnalysis, func(taskCtx context.Context) (string, error) {
		<-taskCtx.Done()
		return "", taskCtx.Err()
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
