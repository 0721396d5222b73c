package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/medignis/docflow/internal/engine"
	"github.com/medignis/docflow/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// audit exports.
type Service struct {
	jobs       repository.JobRepository
	executions repository.StepExecutionRepository
	logger     *slog.Logger
}

func NewService(jobs repository.JobRepository, executions repository.StepExecutionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, executions: executions, logger: logger}
}

// ExportJobAuditXLSX returns an XLSX workbook (as bytes) with the job's full
// execution trail plus, for every branching step the job hit, the outcome
// distribution of that step across all jobs.
func (s *Service) ExportJobAuditXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	rows, err := s.executions.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("query executions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Executions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Position",
		"Step",
		"Started",
		"Finished",
		"Branch",
		"Stop Reason",
		"Failure",
		"Fallback",
		"Tokens",
		"Output Summary",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	branchSteps := map[uuid.UUID]string{}
	rowIdx := 2
	for _, r := range rows {
		meta, err := engine.DecodeMetadata(r.Metadata)
		if err != nil {
			s.logger.Warn("export.metadata.decode_failed", "job_id", jobID, "position", r.Position, "error", err)
			meta = engine.ExecutionMetadata{}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Position)
		write(2, r.StepName)
		write(3, formatTime(r.StartedAt))
		write(4, formatTime(r.FinishedAt))

		if meta.Branch != nil {
			write(5, meta.Branch.Kind+": "+meta.Branch.Label)
			branchSteps[r.StepID] = r.StepName
		}
		if meta.Stop != nil {
			write(6, meta.Stop.Reason)
		}
		if meta.Failure != nil {
			write(7, meta.Failure.Kind+": "+truncate(meta.Failure.Message, 140))
		}
		write(8, meta.FallbackUsed)
		write(9, meta.TokensUsed)
		write(10, truncate(r.OutputSummary, 140))

		rowIdx++
	}

	_ = f.SetColWidth(sheet, "A", "A", 9)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "D", 20)
	_ = f.SetColWidth(sheet, "E", "E", 28)
	_ = f.SetColWidth(sheet, "F", "G", 36)
	_ = f.SetColWidth(sheet, "J", "J", 60)

	if len(branchSteps) > 0 {
		if err := s.writeDistributionSheet(ctx, f, branchSteps); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", jobID.String(),
		"status", job.Status,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeDistributionSheet(ctx context.Context, f *excelize.File, branchSteps map[uuid.UUID]string) error {
	const sheet = "Branch Distribution"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for i, h := range []string{"Step", "Outcome", "Count"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	ids := make([]uuid.UUID, 0, len(branchSteps))
	for id := range branchSteps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return branchSteps[ids[i]] < branchSteps[ids[j]] })

	rowIdx := 2
	for _, stepID := range ids {
		dist, err := s.executions.BranchDistribution(ctx, stepID)
		if err != nil {
			return fmt.Errorf("branch distribution for step %s: %w", stepID, err)
		}
		outcomes := make([]string, 0, len(dist))
		for outcome := range dist {
			outcomes = append(outcomes, outcome)
		}
		sort.Strings(outcomes)
		for _, outcome := range outcomes {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, branchSteps[stepID])
			write(2, outcome)
			write(3, dist[outcome])
			rowIdx++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
