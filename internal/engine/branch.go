package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

// BranchKind tags the variant of a BranchOutcome.
type BranchKind string

const (
	BranchDocumentClass BranchKind = "document_class"
	BranchBoolean       BranchKind = "boolean"
	BranchEnum          BranchKind = "enum"
	BranchGeneric       BranchKind = "generic"
)

// BranchOutcome is the classified result of a branching step. Only the
// document-class variant may reclassify a job; the other kinds feed stop and
// audit logic.
type BranchOutcome struct {
	Kind  BranchKind
	Field string
	Label string
	Class *entity.DocumentClass // set only for BranchDocumentClass
	Bool  bool                  // set only for BranchBoolean
}

// Resolver classifies a branching step's output field value.
type Resolver struct {
	Classes repository.DocumentClassRepository
	Logger  *slog.Logger
}

func NewResolver(classes repository.DocumentClassRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{Classes: classes, Logger: logger}
}

// Resolve reads output[step.BranchingField] and classifies it: a known
// document class name, a canonical boolean token, one of the step's closed
// enum labels, or a generic value. An unclassifiable value is a valid,
// auditable outcome, never an error; only infrastructure failures return one.
func (r *Resolver) Resolve(ctx context.Context, step entity.PipelineStep, output map[string]any) (BranchOutcome, error) {
	raw := stringifyField(output, step.BranchingField)
	outcome := BranchOutcome{Kind: BranchGeneric, Field: step.BranchingField, Label: raw}

	if raw == "" {
		r.Logger.Warn("branching field missing from step output",
			"step", step.Name, "field", step.BranchingField)
		return outcome, nil
	}

	class, err := r.Classes.GetByName(ctx, raw)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return outcome, fmt.Errorf("resolve branch class %q: %w", raw, err)
	}
	if class != nil {
		outcome.Kind = BranchDocumentClass
		outcome.Class = class
		outcome.Label = class.Name
		return outcome, nil
	}

	if b, ok := constants.CanonicalBool(raw); ok {
		outcome.Kind = BranchBoolean
		outcome.Bool = b
		outcome.Label = strconv.FormatBool(b)
		return outcome, nil
	}

	for _, label := range step.BranchLabels {
		if strings.EqualFold(strings.TrimSpace(raw), strings.TrimSpace(label)) {
			outcome.Kind = BranchEnum
			outcome.Label = label
			return outcome, nil
		}
	}

	return outcome, nil
}

// stringifyField renders an output value the way branching model outputs
// arrive in practice: strings, booleans, or numbers.
func stringifyField(output map[string]any, field string) string {
	if output == nil || field == "" {
		return ""
	}
	v, ok := output[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
