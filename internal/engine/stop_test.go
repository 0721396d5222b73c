package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medignis/docflow/internal/entity"
)

func stepWithConditions(conds ...entity.StopCondition) entity.PipelineStep {
	return entity.PipelineStep{Name: "validate", StopConditions: conds}
}

func TestShouldStop_NoConditionsContinues(t *testing.T) {
	d := ShouldStop(stepWithConditions(), map[string]any{"category": "x"})
	assert.False(t, d.Stop)
}

func TestShouldStop_FirstMatchWins(t *testing.T) {
	step := stepWithConditions(
		entity.StopCondition{Field: "category", Operator: "eq", Value: "NICHT_MEDIZINISCH"},
		entity.StopCondition{Field: "category", Operator: "contains", Value: "MEDIZINISCH"},
	)
	d := ShouldStop(step, map[string]any{"category": "NICHT_MEDIZINISCH"})
	require.True(t, d.Stop)
	require.NotNil(t, d.Condition)
	assert.Equal(t, "eq", d.Condition.Operator, "both match, the first declared condition must win")
}

func TestShouldStop_Operators(t *testing.T) {
	tests := []struct {
		name   string
		cond   entity.StopCondition
		output map[string]any
		want   bool
	}{
		{"eq match", entity.StopCondition{Field: "a", Operator: "eq", Value: "x"}, map[string]any{"a": "x"}, true},
		{"eq miss", entity.StopCondition{Field: "a", Operator: "eq", Value: "x"}, map[string]any{"a": "y"}, false},
		{"eq legacy spelling", entity.StopCondition{Field: "a", Operator: "==", Value: "x"}, map[string]any{"a": "x"}, true},
		{"neq match", entity.StopCondition{Field: "a", Operator: "neq", Value: "x"}, map[string]any{"a": "y"}, true},
		{"neq absent does not match", entity.StopCondition{Field: "a", Operator: "neq", Value: "x"}, map[string]any{}, false},
		{"contains", entity.StopCondition{Field: "a", Operator: "contains", Value: "ell"}, map[string]any{"a": "hello"}, true},
		{"prefix", entity.StopCondition{Field: "a", Operator: "prefix", Value: "he"}, map[string]any{"a": "hello"}, true},
		{"absent match", entity.StopCondition{Field: "missing", Operator: "absent"}, map[string]any{"a": "x"}, true},
		{"absent miss", entity.StopCondition{Field: "a", Operator: "absent"}, map[string]any{"a": "x"}, false},
		{"unknown operator never matches", entity.StopCondition{Field: "a", Operator: "regex", Value: ".*"}, map[string]any{"a": "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ShouldStop(stepWithConditions(tt.cond), tt.output)
			assert.Equal(t, tt.want, d.Stop)
		})
	}
}

func TestShouldStop_ReasonNamesTheCondition(t *testing.T) {
	step := stepWithConditions(entity.StopCondition{Field: "category", Operator: "eq", Value: "SPAM"})
	d := ShouldStop(step, map[string]any{"category": "SPAM"})
	require.True(t, d.Stop)
	assert.Contains(t, d.Reason, "category")
	assert.Contains(t, d.Reason, "SPAM")
}
