package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/collector"
	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// scriptedCollector returns queued responses in order, repeating the last.
type scriptedCollector struct {
	name    string
	caps    []collector.Capability
	script  []func() ([]models.EvidenceItem, bool, error)
	callIdx int
	called  int
}

func (s *scriptedCollector) Name() string                         { return s.name }
func (s *scriptedCollector) Capabilities() []collector.Capability { return s.caps }
func (s *scriptedCollector) Cost() float64                        { return 1 }
func (s *scriptedCollector) SuggestedTimeout() time.Duration      { return time.Second }
func (s *scriptedCollector) MaxConcurrency() int                  { return 4 }

func (s *scriptedCollector) Collect(ctx context.Context, in collector.Input) ([]models.EvidenceItem, bool, error) {
	s.called++
	idx := s.callIdx
	if idx >= len(s.script) {
		idx = len(s.script) - 1
	} else {
		s.callIdx++
	}
	return s.script[idx]()
}

func ok(n int) func() ([]models.EvidenceItem, bool, error) {
	return func() ([]models.EvidenceItem, bool, error) {
		items := make([]models.EvidenceItem, n)
		for i := range items {
			items[i] = models.EvidenceItem{Title: "item"}
		}
		return items, true, nil
	}
}

func fail(kind errkind.Kind) func() ([]models.EvidenceItem, bool, error) {
	return func() ([]models.EvidenceItem, bool, error) {
		return nil, false, errkind.Newf(kind, "scripted failure")
	}
}

func newTestExecutor(t *testing.T, collectors ...collector.Collector) (*Executor, *BreakerSet) {
	t.Helper()
	cfg := testResilienceConfig()
	reg, err := collector.NewRegistry(nil, collectors...)
	require.NoError(t, err)
	breakers := NewBreakerSet(cfg, newFakeClock())
	health := NewHealthMonitor(cfg, breakers, prometheus.NewRegistry())
	exec := NewExecutor(cfg, reg, breakers, health, collector.NewHeuristicCollector(), nil, nil)
	return exec, breakers
}

func testInput() collector.Input {
	return collector.Input{
		ScanID:  "scan-1",
		Company: models.Company{Name: "Acme", Website: "https://acme.test"},
	}
}

func TestExecutorPrimarySucceeds(t *testing.T) {
	primary := &scriptedCollector{name: "primary", caps: []collector.Capability{collector.CapWeb}, script: []func() ([]models.EvidenceItem, bool, error){ok(3)}}
	exec, _ := newTestExecutor(t, primary)

	out, err := exec.Execute(context.Background(), collector.CapWeb, testInput(), 0)
	require.NoError(t, err)
	assert.Equal(t, "primary", out.Collector)
	assert.Len(t, out.Items, 3)
	assert.False(t, out.Fallback)
}

func TestExecutorRetriesThenSucceeds(t *testing.T) {
	primary := &scriptedCollector{
		name: "primary", caps: []collector.Capability{collector.CapWeb},
		script: []func() ([]models.EvidenceItem, bool, error){
			fail(errkind.TransientNetwork),
			ok(1),
		},
	}
	exec, _ := newTestExecutor(t, primary)
	exec.policy.InitialDelay = time.Millisecond
	exec.policy.MaxDelay = 2 * time.Millisecond

	out, err := exec.Execute(context.Background(), collector.CapWeb, testInput(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Attempts)
	assert.Equal(t, 2, primary.called)
}

func TestExecutorFallsThroughChain(t *testing.T) {
	primary := &scriptedCollector{name: "a-primary", caps: []collector.Capability{collector.CapWeb}, script: []func() ([]models.EvidenceItem, bool, error){fail(errkind.AuthFailure)}}
	secondary := &scriptedCollector{name: "b-secondary", caps: []collector.Capability{collector.CapWeb}, script: []func() ([]models.EvidenceItem, bool, error){ok(2)}}
	exec, _ := newTestExecutor(t, primary, secondary)

	out, err := exec.Execute(context.Background(), collector.CapWeb, testInput(), 0)
	require.NoError(t, err)
	assert.Equal(t, "b-secondary", out.Collector)
	assert.Len(t, out.Items, 2)

	// The auth failure disables the primary for the rest of the scan.
	out, err = exec.Execute(context.Background(), collector.CapWeb, testInput(), 0)
	require.NoError(t, err)
	assert.Equal(t, "b-secondary", out.Collector)
	assert.Equal(t, 1, primary.called)

	exec.ReleaseScan("scan-1")
	_, err = exec.Execute(context.Background(), collector.CapWeb, testInput(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, primary.called)
}

func TestExecutorHeuristicFallbackLast(t *testing.T) {
	primary := &scriptedCollector{name: "primary", caps: []collector.Capability{collector.CapSecurity}, script: []func() ([]models.EvidenceItem, bool, error){fail(errkind.AuthFailure)}}
	exec, _ := newTestExecutor(t, primary)

	out, err := exec.Execute(context.Background(), collector.CapSecurity, testInput(), 0)
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Equal(t, "heuristic-fallback", out.Collector)
	require.NotEmpty(t, out.Items)
	for _, it := range out.Items {
		assert.True(t, it.Fallback)
		assert.LessOrEqual(t, it.Confidence, 0.5)
	}
}

func TestExecutorOpenBreakerFastFails(t *testing.T) {
	primary := &scriptedCollector{name: "primary", caps: []collector.Capability{collector.CapWeb}, script: []func() ([]models.EvidenceItem, bool, error){fail(errkind.TransientNetwork)}}
	exec, breakers := newTestExecutor(t, primary)
	exec.policy.InitialDelay = time.Millisecond
	exec.policy.MaxDelay = 2 * time.Millisecond

	tripBreaker(breakers.For("primary", "scan-1"))
	before := primary.called

	out, err := exec.Execute(context.Background(), collector.CapWeb, testInput(), 0)
	require.NoError(t, err) // heuristic fallback still supplies evidence
	assert.True(t, out.Fallback)
	assert.Equal(t, before, primary.called, "open breaker must not execute the collector")
}

func TestExecutorMalformedUpstreamYieldsEmptyPartial(t *testing.T) {
	primary := &scriptedCollector{name: "primary", caps: []collector.Capability{collector.CapWeb}, script: []func() ([]models.EvidenceItem, bool, error){fail(errkind.UpstreamMalformed)}}
	exec, _ := newTestExecutor(t, primary)

	out, err := exec.Execute(context.Background(), collector.CapWeb, testInput(), 0)
	require.NoError(t, err)
	assert.Equal(t, "primary", out.Collector)
	assert.Empty(t, out.Items)
	assert.True(t, out.Partial)
	assert.False(t, out.Fallback)
	assert.Equal(t, 1, primary.called)
}

func TestExecutorCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	primary := &scriptedCollector{name: "primary", caps: []collector.Capability{collector.CapWeb}, script: []func() ([]models.EvidenceItem, bool, error){ok(1)}}
	exec, _ := newTestExecutor(t, primary)

	_, err := exec.Execute(ctx, collector.CapWeb, testInput(), 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, primary.called)
}

func TestHealthMonitorLevels(t *testing.T) {
	cfg := testResilienceConfig()
	breakers := NewBreakerSet(cfg, newFakeClock())
	m := NewHealthMonitor(cfg, breakers, prometheus.NewRegistry())

	assert.Equal(t, Healthy, m.Level())

	for i := 0; i < 10; i++ {
		m.Observe("a", true, 10*time.Millisecond)
	}
	assert.Equal(t, Healthy, m.Level())

	// Push overall success rate between critical and degraded thresholds.
	for i := 0; i < 10; i++ {
		m.Observe("a", false, 10*time.Millisecond)
	}
	assert.Equal(t, Degraded, m.Level())

	for i := 0; i < 30; i++ {
		m.Observe("a", false, 10*time.Millisecond)
	}
	assert.Equal(t, Critical, m.Level())
}

func TestHealthMonitorStats(t *testing.T) {
	cfg := testResilienceConfig()
	m := NewHealthMonitor(cfg, NewBreakerSet(cfg, newFakeClock()), prometheus.NewRegistry())

	for i := 1; i <= 10; i++ {
		m.Observe("a", i <= 8, time.Duration(i)*time.Millisecond)
	}
	s := m.Stats("a")
	assert.Equal(t, 10, s.Invocations)
	assert.InDelta(t, 0.8, s.SuccessRate, 1e-9)
	assert.Equal(t, 5*time.Millisecond, s.P50)
	assert.Equal(t, 9*time.Millisecond, s.P95)

	assert.Zero(t, m.Stats("never-seen").Invocations)
}
