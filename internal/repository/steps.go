package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/gen/ent"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
)

// CreateStepParams carries a new step definition into the catalog.
type CreateStepParams struct {
	DocumentClassID *uuid.UUID
	Name            string
	Prompt          string
	Order           int
	Enabled         bool
	IsBranching     bool
	BranchingField  string
	PostBranching   bool
	BranchLabels    []string
	StopConditions  []entity.StopCondition
	OutputSchema    json.RawMessage
	ModelName       string
}

type StepRepository interface {
	Create(ctx context.Context, params CreateStepParams) (*entity.PipelineStep, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PipelineStep, error)
	// ListEnabled returns all enabled universal steps plus, when classID is
	// set, the enabled steps scoped to that class, ordered by step_order.
	ListEnabled(ctx context.Context, classID *uuid.UUID) ([]entity.PipelineStep, error)
	List(ctx context.Context) ([]entity.PipelineStep, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
}

type stepRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewStepRepository(entc *ent.Client, log *slog.Logger) StepRepository {
	return &stepRepo{ent: entc, log: log}
}

func (r *stepRepo) Create(ctx context.Context, params CreateStepParams) (*entity.PipelineStep, error) {
	if params.Name == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "step name is required")
	}
	if params.IsBranching && params.BranchingField == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "branching step needs a branching_field")
	}
	for i, sc := range params.StopConditions {
		op, ok := constants.CanonicalOperator(sc.Operator)
		if !ok {
			return nil, common.WrapError(common.ErrInvalidInput,
				fmt.Sprintf("stop condition %d: unknown operator %q", i, sc.Operator))
		}
		params.StopConditions[i].Operator = string(op)
	}

	// Write-time tie check; the load-time check in the engine stays
	// authoritative because the catalog is edited live.
	taken, err := r.orderTaken(ctx, params.DocumentClassID, params.Order, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: order %d already used in scope", common.ErrCatalogIntegrity, params.Order)
	}

	create := r.ent.PipelineStep.
		Create().
		SetName(params.Name).
		SetPrompt(params.Prompt).
		SetStepOrder(params.Order).
		SetEnabled(params.Enabled).
		SetIsBranching(params.IsBranching).
		SetBranchingField(params.BranchingField).
		SetPostBranching(params.PostBranching)
	if len(params.BranchLabels) > 0 {
		create.SetBranchLabels(params.BranchLabels)
	}
	if params.DocumentClassID != nil {
		create.SetDocumentClassID(*params.DocumentClassID)
	}
	if len(params.StopConditions) > 0 {
		raw, err := json.Marshal(params.StopConditions)
		if err != nil {
			return nil, fmt.Errorf("encode stop conditions: %w", err)
		}
		create.SetStopConditions(raw)
	}
	if len(params.OutputSchema) > 0 {
		create.SetOutputSchema(params.OutputSchema)
	}
	if params.ModelName != "" {
		create.SetModelName(params.ModelName)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("pipeline_step create failed", "name", params.Name, "err", err)
		return nil, err
	}
	r.log.Info("pipeline_step created",
		"step_id", row.ID, "name", params.Name, "order", params.Order,
		"branching", params.IsBranching,
	)
	return toPipelineStep(row)
}

func (r *stepRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PipelineStep, error) {
	row, err := r.ent.PipelineStep.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toPipelineStep(row)
}

func (r *stepRepo) ListEnabled(ctx context.Context, classID *uuid.UUID) ([]entity.PipelineStep, error) {
	scope := pipelinestep.DocumentClassIDIsNil()
	if classID != nil {
		scope = pipelinestep.Or(
			pipelinestep.DocumentClassIDIsNil(),
			pipelinestep.DocumentClassIDEQ(*classID),
		)
	}
	rows, err := r.ent.PipelineStep.
		Query().
		Where(pipelinestep.EnabledEQ(true), scope).
		Order(ent.Asc(pipelinestep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toPipelineSteps(rows)
}

func (r *stepRepo) List(ctx context.Context) ([]entity.PipelineStep, error) {
	rows, err := r.ent.PipelineStep.
		Query().
		Order(ent.Asc(pipelinestep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toPipelineSteps(rows)
}

func (r *stepRepo) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	_, err := r.ent.PipelineStep.
		UpdateOneID(id).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("pipeline_step enable toggle failed", "step_id", id, "err", err)
		return err
	}
	r.log.Info("pipeline_step enable toggled", "step_id", id, "enabled", enabled)
	return nil
}

func (r *stepRepo) orderTaken(ctx context.Context, classID *uuid.UUID, order int, excludeID *uuid.UUID) (bool, error) {
	scope := pipelinestep.DocumentClassIDIsNil()
	if classID != nil {
		scope = pipelinestep.DocumentClassIDEQ(*classID)
	}
	q := r.ent.PipelineStep.
		Query().
		Where(scope, pipelinestep.StepOrderEQ(order))
	if excludeID != nil {
		q = q.Where(pipelinestep.IDNEQ(*excludeID))
	}
	return q.Exist(ctx)
}

func toPipelineStep(row *ent.PipelineStep) (*entity.PipelineStep, error) {
	var conditions []entity.StopCondition
	if len(row.StopConditions) > 0 {
		if err := json.Unmarshal(row.StopConditions, &conditions); err != nil {
			return nil, fmt.Errorf("decode stop conditions for step %s: %w", row.ID, err)
		}
	}
	step := &entity.PipelineStep{
		ID:             row.ID,
		Name:           row.Name,
		Prompt:         row.Prompt,
		Order:          row.StepOrder,
		Enabled:        row.Enabled,
		IsBranching:    row.IsBranching,
		BranchingField: row.BranchingField,
		PostBranching:  row.PostBranching,
		BranchLabels:   row.BranchLabels,
		StopConditions: conditions,
		OutputSchema:   row.OutputSchema,
		ModelName:      row.ModelName,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.DocumentClassID != nil {
		id := *row.DocumentClassID
		step.DocumentClassID = &id
	}
	return step, nil
}

func toPipelineSteps(rows []*ent.PipelineStep) ([]entity.PipelineStep, error) {
	out := make([]entity.PipelineStep, 0, len(rows))
	for _, row := range rows {
		step, err := toPipelineStep(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *step)
	}
	return out, nil
}
