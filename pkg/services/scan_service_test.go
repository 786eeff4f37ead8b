package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/pkg/models"
)

func TestNormalizeWebsite(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://acme.test", want: "https://acme.test"},
		{in: "acme.test", want: "https://acme.test"},
		{in: "  acme.test/about  ", want: "https://acme.test/about"},
		{in: "http://acme.test:8080/x", want: "http://acme.test:8080/x"},
		{in: "", wantErr: true},
		{in: "ftp://acme.test", wantErr: true},
		{in: "https://", wantErr: true},
	}
	for _, tt := range tests {
		got, err := normalizeWebsite(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPriorityForDepth(t *testing.T) {
	assert.Equal(t, 6, priorityForDepth(models.DepthShallow))
	assert.Equal(t, 5, priorityForDepth(models.DepthDeep))
	assert.Equal(t, 4, priorityForDepth(models.DepthExhaustive))
}

func TestThesisForRoundTrip(t *testing.T) {
	original := models.DefaultThesis("Acme")
	snapshot, err := thesisToMap(original)
	require.NoError(t, err)

	scan := &ent.ScanRequest{CompanyName: "Acme", Thesis: snapshot}
	restored, err := ThesisFor(scan)
	require.NoError(t, err)

	assert.Equal(t, original.Statement, restored.Statement)
	require.Len(t, restored.Pillars, 4)
	assert.Equal(t, "technology", restored.Pillars[0].ID)
	assert.InDelta(t, 0.35, restored.Pillars[0].Weight, 1e-9)
	require.NoError(t, restored.Validate())
}

func TestThesisForEmptySnapshotFallsBack(t *testing.T) {
	scan := &ent.ScanRequest{CompanyName: "Acme"}
	thesis, err := ThesisFor(scan)
	require.NoError(t, err)
	assert.Contains(t, thesis.Statement, "Acme")
	require.NoError(t, thesis.Validate())
}

func TestValidationErrorPredicate(t *testing.T) {
	err := NewValidationError("company.name", "required")
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "company.name")
	assert.False(t, IsValidationError(ErrNotFound))
}
