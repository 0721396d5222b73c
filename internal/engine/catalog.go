package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

// Catalog resolves the applicable, ordered step sequence for a walk. The
// orchestrator calls Load once at walk start and again after every class
// reassignment, so each walk segment sees one consistent snapshot.
type Catalog struct {
	Steps  repository.StepRepository
	Logger *slog.Logger
}

func NewCatalog(steps repository.StepRepository, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{Steps: steps, Logger: logger}
}

// Load returns the enabled steps applicable to the given class, ordered by
// step order. With no class assigned yet, only universal pre-branching steps
// qualify; if that subset is empty the catalog is misconfigured and Load
// degrades to all enabled universal steps, reporting fallbackUsed so the
// first audit row makes the degraded mode queryable.
func (c *Catalog) Load(ctx context.Context, classID *uuid.UUID) (steps []entity.PipelineStep, fallbackUsed bool, err error) {
	rows, err := c.Steps.ListEnabled(ctx, classID)
	if err != nil {
		return nil, false, fmt.Errorf("load steps: %w", err)
	}

	if classID == nil {
		pre := make([]entity.PipelineStep, 0, len(rows))
		for _, s := range rows {
			if !s.PostBranching {
				pre = append(pre, s)
			}
		}
		if len(pre) == 0 && len(rows) > 0 {
			c.Logger.Warn("no universal pre-branching steps; falling back to all enabled universal steps",
				"universal_steps", len(rows))
			fallbackUsed = true
		} else {
			rows = pre
		}
	}

	sortSteps(rows)
	if err := checkOrderIntegrity(rows); err != nil {
		return nil, false, err
	}
	return rows, fallbackUsed, nil
}

// Tail applies the rewind rule after a class branch at order k: only steps
// strictly after k remain; branching never causes rewind.
func Tail(steps []entity.PipelineStep, afterOrder int) []entity.PipelineStep {
	out := make([]entity.PipelineStep, 0, len(steps))
	for _, s := range steps {
		if s.Order > afterOrder {
			out = append(out, s)
		}
	}
	return out
}

// sortSteps orders by step order; for equal orders across scopes, universal
// steps run before class-scoped ones, then by name, so the merged sequence
// is deterministic.
func sortSteps(steps []entity.PipelineStep) {
	sort.SliceStable(steps, func(i, j int) bool {
		a, b := steps[i], steps[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.Universal() != b.Universal() {
			return a.Universal()
		}
		return a.Name < b.Name
	})
}

// checkOrderIntegrity rejects duplicate order values within one scope. Ties
// are fatal for the whole load, never silently resolved.
func checkOrderIntegrity(steps []entity.PipelineStep) error {
	type scopeOrder struct {
		class uuid.UUID
		order int
	}
	seen := make(map[scopeOrder]string, len(steps))
	for _, s := range steps {
		key := scopeOrder{order: s.Order}
		if s.DocumentClassID != nil {
			key.class = *s.DocumentClassID
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: steps %q and %q share order %d in the same scope",
				common.ErrCatalogIntegrity, prev, s.Name, s.Order)
		}
		seen[key] = s.Name
	}
	return nil
}
