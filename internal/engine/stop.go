package engine

import (
	"fmt"
	"strings"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/internal/entity"
)

// StopDecision is the result of evaluating a step's stop conditions.
type StopDecision struct {
	Stop      bool
	Reason    string
	Condition *entity.StopCondition
}

// Continue is the decision for steps whose conditions all missed.
var Continue = StopDecision{}

// ShouldStop evaluates the step's stop conditions in declared order against
// the step output. The first matching predicate wins; a step with no
// conditions always continues.
func ShouldStop(step entity.PipelineStep, output map[string]any) StopDecision {
	for i := range step.StopConditions {
		cond := step.StopConditions[i]
		if !matches(cond, output) {
			continue
		}
		return StopDecision{
			Stop:      true,
			Reason:    fmt.Sprintf("step %q: field %q %s %q", step.Name, cond.Field, cond.Operator, cond.Value),
			Condition: &cond,
		}
	}
	return Continue
}

func matches(cond entity.StopCondition, output map[string]any) bool {
	op, ok := constants.CanonicalOperator(cond.Operator)
	if !ok {
		return false
	}
	actual := stringifyField(output, cond.Field)

	switch op {
	case constants.OpAbsent:
		return actual == ""
	case constants.OpEquals:
		return actual == strings.TrimSpace(cond.Value)
	case constants.OpNotEquals:
		return actual != "" && actual != strings.TrimSpace(cond.Value)
	case constants.OpContains:
		return actual != "" && strings.Contains(actual, cond.Value)
	case constants.OpPrefix:
		return actual != "" && strings.HasPrefix(actual, cond.Value)
	}
	return false
}
