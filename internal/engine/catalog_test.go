package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
)

func universalStep(name string, order int, postBranching bool) entity.PipelineStep {
	return entity.PipelineStep{
		ID:            uuid.New(),
		Name:          name,
		Order:         order,
		Enabled:       true,
		PostBranching: postBranching,
	}
}

func scopedStep(name string, order int, classID uuid.UUID) entity.PipelineStep {
	return entity.PipelineStep{
		ID:              uuid.New(),
		Name:            name,
		Order:           order,
		Enabled:         true,
		DocumentClassID: &classID,
		PostBranching:   true,
	}
}

func TestCatalogLoad_PreBranchingOnly(t *testing.T) {
	steps := &fakeStepRepo{steps: []entity.PipelineStep{
		universalStep("ocr", 1, false),
		universalStep("classify", 2, false),
		universalStep("translate", 3, true),
	}}
	catalog := NewCatalog(steps, nil)

	loaded, fallback, err := catalog.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, fallback)
	require.Len(t, loaded, 2)
	assert.Equal(t, "ocr", loaded[0].Name)
	assert.Equal(t, "classify", loaded[1].Name)
}

func TestCatalogLoad_FallbackWhenNoPreBranchingSteps(t *testing.T) {
	steps := &fakeStepRepo{steps: []entity.PipelineStep{
		universalStep("translate", 5, true),
		universalStep("summarize", 6, true),
	}}
	catalog := NewCatalog(steps, nil)

	loaded, fallback, err := catalog.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, fallback, "empty pre-branching subset must be an audited degraded mode")
	require.Len(t, loaded, 2)
}

func TestCatalogLoad_ClassScopeUnion(t *testing.T) {
	classID := uuid.New()
	otherID := uuid.New()
	steps := &fakeStepRepo{steps: []entity.PipelineStep{
		universalStep("ocr", 1, false),
		scopedStep("extract_values", 2, classID),
		scopedStep("other_only", 2, otherID),
	}}
	catalog := NewCatalog(steps, nil)

	loaded, _, err := catalog.Load(context.Background(), &classID)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "ocr", loaded[0].Name)
	assert.Equal(t, "extract_values", loaded[1].Name)
}

func TestCatalogLoad_DuplicateOrderSameScopeFails(t *testing.T) {
	classID := uuid.New()
	steps := &fakeStepRepo{steps: []entity.PipelineStep{
		scopedStep("a", 3, classID),
		scopedStep("b", 3, classID),
		universalStep("ocr", 1, false),
	}}
	catalog := NewCatalog(steps, nil)

	_, _, err := catalog.Load(context.Background(), &classID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCatalogIntegrity)
}

func TestCatalogLoad_EqualOrderAcrossScopesIsLegalAndDeterministic(t *testing.T) {
	classID := uuid.New()
	steps := &fakeStepRepo{steps: []entity.PipelineStep{
		scopedStep("scoped", 2, classID),
		universalStep("universal", 2, false),
	}}
	catalog := NewCatalog(steps, nil)

	loaded, _, err := catalog.Load(context.Background(), &classID)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "universal", loaded[0].Name, "universal steps run first on order ties across scopes")
	assert.Equal(t, "scoped", loaded[1].Name)
}

func TestCatalogLoad_DisabledStepsInvisible(t *testing.T) {
	disabled := universalStep("disabled", 1, false)
	disabled.Enabled = false
	steps := &fakeStepRepo{steps: []entity.PipelineStep{
		disabled,
		universalStep("ocr", 2, false),
	}}
	catalog := NewCatalog(steps, nil)

	loaded, _, err := catalog.Load(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "ocr", loaded[0].Name)
}

func TestTail_ExcludesStepsAtOrBeforeOrder(t *testing.T) {
	classID := uuid.New()
	steps := []entity.PipelineStep{
		scopedStep("before", 1, classID),
		scopedStep("at", 2, classID),
		scopedStep("after", 3, classID),
	}
	tail := Tail(steps, 2)
	require.Len(t, tail, 1)
	assert.Equal(t, "after", tail[0].Name)
}
