package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/resilience"
)

func TestDispatcherDeliverToWaiter(t *testing.T) {
	d := NewDispatcher()
	ch, forget := d.Register("scan-1:initial-evidence:web")
	defer forget()

	ok := d.Deliver("scan-1:initial-evidence:web", TaskResult{
		Outcome: resilience.Outcome{Attempts: 2},
	})
	require.True(t, ok)

	res := <-ch
	assert.Equal(t, 2, res.Outcome.Attempts)

	// Delivery consumes the waiter.
	assert.False(t, d.Deliver("scan-1:initial-evidence:web", TaskResult{}))
}

func TestDispatcherNoWaiter(t *testing.T) {
	d := NewDispatcher()
	assert.False(t, d.Deliver("scan-9:security-assessment:tls", TaskResult{}),
		"a result with no local waiter belongs to another pod")
	assert.False(t, d.Deliver("", TaskResult{}))
}

func TestDispatcherForget(t *testing.T) {
	d := NewDispatcher()
	_, forget := d.Register("scan-1:deep-crawl:deep-crawler")
	forget()
	assert.False(t, d.Deliver("scan-1:deep-crawl:deep-crawler", TaskResult{}))
}
