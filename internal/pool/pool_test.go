package pool

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Map(t *testing.T) {
	p := New(3)
	defer p.Close()

	assert.Equal(t, 3, p.Size())

	out, err := Map(context.Background(), p, 10, func(i int) int { return i * i })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, out)

	empty, err := Map(context.Background(), p, 0, func(i int) int { return i })
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p := New(1)
	p.Close()
	p.Close()

	err := p.Submit(context.Background(), func() {})
	require.ErrorIs(t, err, ErrClosed)

	_, err = Map(context.Background(), p, 2, func(i int) int { return i })
	require.ErrorIs(t, err, ErrClosed)
}

func TestPool_CanceledContext(t *testing.T) {
	p := New(1)
	defer p.Close()

	block := make(chan struct{})
	started := make(chan struct{})
	var ran atomic.Int32

	// Occupy the worker, then fill the queue.
	require.NoError(t, p.Submit(context.Background(), func() {
		close(started)
		<-block
		ran.Add(1)
	}))
	<-started

	for i := 0; i < 2; i++ {
		require.NoError(t, p.Submit(context.Background(), func() { ran.Add(1) }))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Submit(ctx, func() {})
	require.ErrorIs(t, err, context.Canceled)

	close(block)
	p.Close()
	assert.Equal(t, int32(3), ran.Load())
}

func TestPool_DefaultSize(t *testing.T) {
	p := New(0)
	defer p.Close()
	assert.Positive(t, p.Size())
}
