package collector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/models"
)

// fakeCollector is a minimal collector for registry tests.
type fakeCollector struct {
	name    string
	caps    []Capability
	timeout time.Duration
	conc    int
}

func (f *fakeCollector) Name() string                    { return f.name }
func (f *fakeCollector) Capabilities() []Capability      { return f.caps }
func (f *fakeCollector) Cost() float64                   { return 1 }
func (f *fakeCollector) SuggestedTimeout() time.Duration { return f.timeout }
func (f *fakeCollector) MaxConcurrency() int             { return f.conc }
func (f *fakeCollector) Collect(context.Context, Input) ([]models.EvidenceItem, bool, error) {
	return nil, false, nil
}

func TestRegistryLookup(t *testing.T) {
	reg, err := NewRegistry(nil,
		&fakeCollector{name: "alpha", caps: []Capability{CapWeb}, timeout: time.Second, conc: 2},
		&fakeCollector{name: "beta", caps: []Capability{CapWeb, CapTech}, timeout: time.Minute, conc: 4},
	)
	require.NoError(t, err)

	c, err := reg.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", c.Name())

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, ErrCollectorNotFound)

	list, err := reg.ByCapability(CapWeb)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = reg.ByCapability(CapTLS)
	assert.ErrorIs(t, err, ErrNoCapability)

	assert.Equal(t, []string{"alpha", "beta"}, reg.Names())
}

func TestRegistryDuplicateName(t *testing.T) {
	_, err := NewRegistry(nil,
		&fakeCollector{name: "alpha", caps: []Capability{CapWeb}},
		&fakeCollector{name: "alpha", caps: []Capability{CapTech}},
	)
	assert.Error(t, err)
}

func TestRegistryDisabledCollectorInvisible(t *testing.T) {
	off := false
	cfg := &config.CollectorsConfig{
		Collectors: map[string]config.CollectorConfig{
			"beta": {Enabled: &off},
		},
		CapabilityPriority: map[string][]string{},
	}
	reg, err := NewRegistry(cfg,
		&fakeCollector{name: "alpha", caps: []Capability{CapWeb}},
		&fakeCollector{name: "beta", caps: []Capability{CapWeb}},
	)
	require.NoError(t, err)

	_, err = reg.Get("beta")
	assert.ErrorIs(t, err, ErrCollectorNotFound)

	list, err := reg.ByCapability(CapWeb)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alpha", list[0].Name())
}

func TestRegistryCapabilityPriorityOrder(t *testing.T) {
	cfg := &config.CollectorsConfig{
		Collectors: map[string]config.CollectorConfig{},
		CapabilityPriority: map[string][]string{
			string(CapWeb): {"zulu", "mike"},
		},
	}
	reg, err := NewRegistry(cfg,
		&fakeCollector{name: "alpha", caps: []Capability{CapWeb}},
		&fakeCollector{name: "mike", caps: []Capability{CapWeb}},
		&fakeCollector{name: "zulu", caps: []Capability{CapWeb}},
	)
	require.NoError(t, err)

	list, err := reg.ByCapability(CapWeb)
	require.NoError(t, err)
	got := make([]string, len(list))
	for i, c := range list {
		got[i] = c.Name()
	}
	// Listed names first in listed order, unlisted after by name.
	assert.Equal(t, []string{"zulu", "mike", "alpha"}, got)
}

func TestRegistryTimeoutAndConcurrencyOverrides(t *testing.T) {
	cfg := &config.CollectorsConfig{
		Collectors: map[string]config.CollectorConfig{
			"alpha": {Timeout: 90 * time.Second, MaxConcurrency: 7},
		},
		CapabilityPriority: map[string][]string{},
	}
	reg, err := NewRegistry(cfg,
		&fakeCollector{name: "alpha", caps: []Capability{CapWeb}, timeout: time.Second, conc: 2},
		&fakeCollector{name: "beta", caps: []Capability{CapWeb}, timeout: time.Minute, conc: 4},
	)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, reg.Timeout("alpha"))
	assert.Equal(t, 7, reg.MaxConcurrency("alpha"))
	assert.Equal(t, time.Minute, reg.Timeout("beta"))
	assert.Equal(t, 4, reg.MaxConcurrency("beta"))
	assert.Equal(t, 1, reg.MaxConcurrency("missing"))
}

func TestHeuristicCollectorAlwaysSucceeds(t *testing.T) {
	h := NewHeuristicCollector()
	items, ok, err := h.Collect(context.Background(), Input{
		ScanID: "scan-1",
		Company: models.Company{
			Name:    "Acme Robotics",
			Website: "https://acme-robotics.io",
		},
	})
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotEmpty(t, items)
	for _, it := range items {
		assert.True(t, it.Fallback)
		assert.LessOrEqual(t, it.Confidence, 0.5)
		assert.Equal(t, "scan-1", it.ScanID)
	}
}

func TestSearchCollectorQueryTemplates(t *testing.T) {
	in := Input{Company: models.Company{Name: "Acme"}}

	qs := queriesFor(models.CategoryFinancial, in)
	require.NotEmpty(t, qs)
	assert.Contains(t, qs[0], "Acme")

	in.Options = map[string]any{"queries": []string{"custom query"}}
	assert.Equal(t, []string{"custom query"}, queriesFor(models.CategoryMarket, in))
}
