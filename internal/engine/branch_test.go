package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medignis/docflow/internal/entity"
)

func branchingStep(field string, labels ...string) entity.PipelineStep {
	return entity.PipelineStep{
		ID:             uuid.New(),
		Name:           "classify",
		Order:          1,
		Enabled:        true,
		IsBranching:    true,
		BranchingField: field,
		BranchLabels:   labels,
	}
}

func TestResolve_DocumentClass(t *testing.T) {
	classes := &fakeClassRepo{classes: []entity.DocumentClass{
		{ID: uuid.New(), Name: "LAB"},
		{ID: uuid.New(), Name: "LETTER"},
	}}
	r := NewResolver(classes, nil)

	outcome, err := r.Resolve(context.Background(), branchingStep("doc_class"),
		map[string]any{"doc_class": "LAB"})
	require.NoError(t, err)
	assert.Equal(t, BranchDocumentClass, outcome.Kind)
	require.NotNil(t, outcome.Class)
	assert.Equal(t, "LAB", outcome.Class.Name)
	assert.Equal(t, "LAB", outcome.Label)
}

func TestResolve_BooleanTokens(t *testing.T) {
	r := NewResolver(&fakeClassRepo{}, nil)

	tests := []struct {
		raw  any
		want bool
	}{
		{"true", true},
		{"yes", true},
		{"ja", true},
		{true, true},
		{"false", false},
		{"nein", false},
		{"0", false},
	}
	for _, tt := range tests {
		outcome, err := r.Resolve(context.Background(), branchingStep("is_medical"),
			map[string]any{"is_medical": tt.raw})
		require.NoError(t, err)
		assert.Equal(t, BranchBoolean, outcome.Kind, "raw=%v", tt.raw)
		assert.Equal(t, tt.want, outcome.Bool, "raw=%v", tt.raw)
	}
}

func TestResolve_EnumLabel(t *testing.T) {
	r := NewResolver(&fakeClassRepo{}, nil)
	step := branchingStep("severity", "LOW", "MEDIUM", "HIGH")

	outcome, err := r.Resolve(context.Background(), step,
		map[string]any{"severity": " medium "})
	require.NoError(t, err)
	assert.Equal(t, BranchEnum, outcome.Kind)
	assert.Equal(t, "MEDIUM", outcome.Label)
}

func TestResolve_GenericFallback(t *testing.T) {
	r := NewResolver(&fakeClassRepo{}, nil)

	outcome, err := r.Resolve(context.Background(), branchingStep("doc_class"),
		map[string]any{"doc_class": "something else entirely"})
	require.NoError(t, err)
	assert.Equal(t, BranchGeneric, outcome.Kind)
	assert.Equal(t, "something else entirely", outcome.Label)
}

func TestResolve_MissingFieldIsGeneric(t *testing.T) {
	r := NewResolver(&fakeClassRepo{}, nil)

	outcome, err := r.Resolve(context.Background(), branchingStep("doc_class"),
		map[string]any{"other": "x"})
	require.NoError(t, err)
	assert.Equal(t, BranchGeneric, outcome.Kind)
	assert.Empty(t, outcome.Label)
}

func TestResolve_NumericValue(t *testing.T) {
	r := NewResolver(&fakeClassRepo{}, nil)
	step := branchingStep("bucket", "2")

	outcome, err := r.Resolve(context.Background(), step,
		map[string]any{"bucket": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, BranchEnum, outcome.Kind)
	assert.Equal(t, "2", outcome.Label)
}
