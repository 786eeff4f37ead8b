package pipeline

import (
	"fmt"
	"time"
)

// taskPayload is the collector job payload. It round-trips through the
// jobs table as JSON, so decode must tolerate the usual JSON widenings
// (numbers as float64, string slices as []any).
type taskPayload struct {
	Stage      string
	Capability string
	Collector  string
	Budget     time.Duration
	Options    map[string]any
}

func encodeTaskPayload(stageName string, t Task) map[string]any {
	p := map[string]any{
		"stage": stageName,
	}
	if t.Capability != "" {
		p["capability"] = string(t.Capability)
	}
	if t.Collector != "" {
		p["collector"] = t.Collector
	}
	if t.Budget > 0 {
		p["budget_ms"] = t.Budget.Milliseconds()
	}
	if len(t.Options) > 0 {
		p["options"] = t.Options
	}
	return p
}

func decodeTaskPayload(raw map[string]any) (taskPayload, error) {
	var p taskPayload
	p.Stage, _ = raw["stage"].(string)
	p.Capability, _ = raw["capability"].(string)
	p.Collector, _ = raw["collector"].(string)
	if p.Capability == "" && p.Collector == "" {
		return p, fmt.Errorf("task payload names neither capability nor collector")
	}
	if ms, ok := asFloat(raw["budget_ms"]); ok {
		p.Budget = time.Duration(ms) * time.Millisecond
	}
	if opts, ok := raw["options"].(map[string]any); ok {
		p.Options = normalizeOptions(opts)
	}
	return p, nil
}

// normalizeOptions undoes JSON round-trip damage collectors care about:
// "queries" comes back as []any and must be []string again.
func normalizeOptions(opts map[string]any) map[string]any {
	out := make(map[string]any, len(opts))
	for k, v := range opts {
		out[k] = v
	}
	if raw, ok := out["queries"].([]any); ok {
		queries := make([]string, 0, len(raw))
		for _, q := range raw {
			if s, ok := q.(string); ok {
				queries = append(queries, s)
			}
		}
		out["queries"] = queries
	}
	return out
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
