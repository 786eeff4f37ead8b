package models

import (
	"fmt"
	"math"
)

// weightTolerance is the allowed drift when checking that pillar weights sum to 1.
const weightTolerance = 1e-6

// Pillar is one weighted dimension of an investment thesis.
type Pillar struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Weight    float64  `json:"weight"`
	Questions []string `json:"questions,omitempty"`
}

// Thesis is the investment thesis a report is aligned to.
// Immutable after scan start.
type Thesis struct {
	ID              string   `json:"id"`
	Statement       string   `json:"statement"`
	Pillars         []Pillar `json:"pillars"`
	SuccessCriteria []string `json:"success_criteria,omitempty"`
	TargetMarkets   []string `json:"target_markets,omitempty"`
}

// Validate checks structural invariants: at least one pillar, weights in
// [0,1], and weights summing to 1 within tolerance.
func (t *Thesis) Validate() error {
	if len(t.Pillars) == 0 {
		return fmt.Errorf("thesis has no pillars")
	}
	sum := 0.0
	for _, p := range t.Pillars {
		if p.ID == "" {
			return fmt.Errorf("pillar %q has no id", p.Name)
		}
		if p.Weight < 0 || p.Weight > 1 {
			return fmt.Errorf("pillar %q weight %v out of [0,1]", p.ID, p.Weight)
		}
		sum += p.Weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("pillar weights sum to %v, want 1", sum)
	}
	return nil
}

// Normalize rescales pillar weights so they sum to exactly 1.
// A thesis whose weights sum to zero is left untouched.
func (t *Thesis) Normalize() {
	sum := 0.0
	for _, p := range t.Pillars {
		sum += p.Weight
	}
	if sum <= 0 {
		return
	}
	for i := range t.Pillars {
		t.Pillars[i].Weight /= sum
	}
}

// PillarByID returns the pillar with the given id, if present.
func (t *Thesis) PillarByID(id string) (Pillar, bool) {
	for _, p := range t.Pillars {
		if p.ID == id {
			return p, true
		}
	}
	return Pillar{}, false
}

// DefaultThesis returns the generic technical due-diligence thesis used when
// the caller supplies none: four equally relevant pillars weighted toward
// technology.
func DefaultThesis(company string) *Thesis {
	return &Thesis{
		ID:        "default",
		Statement: fmt.Sprintf("Assess %s as a technology investment target", company),
		Pillars: []Pillar{
			{ID: "technology", Name: "Technology & Architecture", Weight: 0.35,
				Questions: []string{"What is the technology stack?", "Is the architecture scalable?"}},
			{ID: "market", Name: "Market Position", Weight: 0.25,
				Questions: []string{"Who are the competitors?", "What is the differentiation?"}},
			{ID: "security", Name: "Security Posture", Weight: 0.20,
				Questions: []string{"Are there known vulnerabilities?", "Is transport security sound?"}},
			{ID: "financial", Name: "Financial Signals", Weight: 0.20,
				Questions: []string{"What funding or revenue signals exist?"}},
		},
	}
}
