package server

import (
	"context"
	"encoding/json"
	"errors"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/medignis/docflow/gen/docflow/v1"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

type CatalogService struct {
	v1.UnimplementedCatalogServiceServer
	steps      repository.StepRepository
	classes    repository.DocumentClassRepository
	executions repository.StepExecutionRepository
	logger     *slog.Logger
}

func NewCatalogService(
	steps repository.StepRepository,
	classes repository.DocumentClassRepository,
	executions repository.StepExecutionRepository,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{steps: steps, classes: classes, executions: executions, logger: logger}
}

// ListPipelineSteps lists the whole catalog, or the scope a job of the given
// class would see (universal plus class-scoped, enabled only).
func (s *CatalogService) ListPipelineSteps(ctx context.Context, req *v1.ListPipelineStepsRequest) (*v1.ListPipelineStepsResponse, error) {
	var rows []entity.PipelineStep
	var err error
	if raw := req.GetDocumentClassId(); raw != "" {
		classID, perr := parseID(raw, "document_class_id")
		if perr != nil {
			return nil, perr
		}
		rows, err = s.steps.ListEnabled(ctx, &classID)
	} else {
		rows, err = s.steps.List(ctx)
	}
	if err != nil {
		s.logger.Error("catalog.steps.failed", "error", err)
		return nil, common.InternalError("list pipeline steps failed")
	}

	out := make([]*v1.PipelineStep, 0, len(rows))
	for i := range rows {
		out = append(out, toProtoStep(&rows[i]))
	}
	return &v1.ListPipelineStepsResponse{Steps: out}, nil
}

func (s *CatalogService) ListDocumentClasses(ctx context.Context, _ *v1.ListDocumentClassesRequest) (*v1.ListDocumentClassesResponse, error) {
	rows, err := s.classes.List(ctx)
	if err != nil {
		s.logger.Error("catalog.classes.failed", "error", err)
		return nil, common.InternalError("list document classes failed")
	}

	out := make([]*v1.DocumentClass, 0, len(rows))
	for _, c := range rows {
		out = append(out, &v1.DocumentClass{
			Id:          c.ID.String(),
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return &v1.ListDocumentClassesResponse{Classes: out}, nil
}

func (s *CatalogService) GetBranchDistribution(ctx context.Context, req *v1.GetBranchDistributionRequest) (*v1.GetBranchDistributionResponse, error) {
	stepID, err := parseID(req.GetStepId(), "step_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.steps.GetByID(ctx, stepID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("step not found")
		}
		return nil, common.InternalError("get branch distribution failed")
	}

	dist, err := s.executions.BranchDistribution(ctx, stepID)
	if err != nil {
		s.logger.Error("catalog.distribution.failed", "step_id", stepID, "error", err)
		return nil, common.InternalError("get branch distribution failed")
	}

	out := make(map[string]int64, len(dist))
	for outcome, count := range dist {
		out[outcome] = int64(count)
	}
	return &v1.GetBranchDistributionResponse{Distribution: out}, nil
}

func toProtoStep(step *entity.PipelineStep) *v1.PipelineStep {
	out := &v1.PipelineStep{
		Id:                 step.ID.String(),
		Name:               step.Name,
		Prompt:             step.Prompt,
		StepOrder:          int32(step.Order),
		Enabled:            step.Enabled,
		IsBranching:        step.IsBranching,
		BranchingField:     step.BranchingField,
		PostBranching:      step.PostBranching,
		BranchLabels:       step.BranchLabels,
		OutputSchemaJson:   string(step.OutputSchema),
		StopConditionsJson: encodeConditions(step.StopConditions),
	}
	if step.DocumentClassID != nil && *step.DocumentClassID != uuid.Nil {
		out.DocumentClassId = step.DocumentClassID.String()
	}
	if step.ModelName != nil {
		out.ModelName = *step.ModelName
	}
	return out
}

func encodeConditions(conds []entity.StopCondition) string {
	if len(conds) == 0 {
		return ""
	}
	raw, err := json.Marshal(conds)
	if err != nil {
		return ""
	}
	return string(raw)
}
