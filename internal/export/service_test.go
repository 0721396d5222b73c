package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/internal/engine"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

type stubJobRepo struct {
	job *entity.Job
}

func (s *stubJobRepo) Create(context.Context, repository.CreateJobParams) (*entity.Job, error) {
	return nil, nil
}
func (s *stubJobRepo) GetByID(context.Context, uuid.UUID) (*entity.Job, error) {
	return s.job, nil
}
func (s *stubJobRepo) GetArtifact(context.Context, uuid.UUID) ([]byte, error) {
	return nil, nil
}
func (s *stubJobRepo) MarkRunning(context.Context, uuid.UUID) error { return nil }
func (s *stubJobRepo) SetDocumentClass(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (s *stubJobRepo) SetResult(context.Context, uuid.UUID, json.RawMessage) error {
	return nil
}
func (s *stubJobRepo) SetAuxText(context.Context, uuid.UUID, string) error { return nil }
func (s *stubJobRepo) ClearAuxText(context.Context, uuid.UUID) error       { return nil }
func (s *stubJobRepo) RequestCancel(context.Context, uuid.UUID) error      { return nil }
func (s *stubJobRepo) IsCancelRequested(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubJobRepo) Finish(context.Context, uuid.UUID, constants.JobStatus, string) error {
	return nil
}

type stubExecRepo struct {
	rows []entity.StepExecution
	dist map[string]int
}

func (s *stubExecRepo) Record(context.Context, repository.RecordExecutionParams) (*entity.StepExecution, error) {
	return nil, nil
}
func (s *stubExecRepo) ListByJob(context.Context, uuid.UUID) ([]entity.StepExecution, error) {
	return s.rows, nil
}
func (s *stubExecRepo) BranchDistribution(context.Context, uuid.UUID) (map[string]int, error) {
	return s.dist, nil
}

func encodeMeta(t *testing.T, meta engine.ExecutionMetadata) json.RawMessage {
	t.Helper()
	raw, err := meta.Encode()
	require.NoError(t, err)
	return raw
}

func TestExportJobAuditXLSX(t *testing.T) {
	jobID := uuid.New()
	classifyID := uuid.New()
	now := time.Now()

	jobs := &stubJobRepo{job: &entity.Job{ID: jobID, Status: string(constants.JobStatusCompleted)}}
	execs := &stubExecRepo{
		rows: []entity.StepExecution{
			{
				JobID: jobID, StepID: classifyID, Position: 0, StepName: "classify",
				OutputSummary: `{"doc_class":"LAB"}`,
				StartedAt:     now, FinishedAt: now.Add(time.Second),
				Metadata: encodeMeta(t, engine.ExecutionMetadata{
					TokensUsed: 42,
					Branch:     &engine.BranchMetadata{Kind: "document_class", Field: "doc_class", Label: "LAB"},
				}),
			},
			{
				JobID: jobID, StepID: uuid.New(), Position: 1, StepName: "extract_values",
				OutputSummary: `{"values":"ok"}`,
				StartedAt:     now.Add(time.Second), FinishedAt: now.Add(2 * time.Second),
				Metadata:      encodeMeta(t, engine.ExecutionMetadata{TokensUsed: 17}),
			},
		},
		dist: map[string]int{"document_class:LAB": 3, "generic:unknown": 1},
	}

	svc := NewService(jobs, execs, nil)
	out, err := svc.ExportJobAuditXLSX(context.Background(), jobID)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Executions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Position", rows[0][0])
	assert.Equal(t, "classify", rows[1][1])
	assert.Equal(t, "document_class: LAB", rows[1][4])
	assert.Equal(t, "extract_values", rows[2][1])

	dist, err := f.GetRows("Branch Distribution")
	require.NoError(t, err)
	require.Len(t, dist, 3)
	assert.Equal(t, []string{"classify", "document_class:LAB", "3"}, dist[1])
	assert.Equal(t, []string{"classify", "generic:unknown", "1"}, dist[2])
}

func TestExportJobAuditXLSX_NoBranchesSkipsDistributionSheet(t *testing.T) {
	jobID := uuid.New()
	jobs := &stubJobRepo{job: &entity.Job{ID: jobID, Status: string(constants.JobStatusCompleted)}}
	execs := &stubExecRepo{
		rows: []entity.StepExecution{
			{
				JobID: jobID, StepID: uuid.New(), Position: 0, StepName: "ocr",
				Metadata: encodeMeta(t, engine.ExecutionMetadata{}),
			},
		},
	}

	svc := NewService(jobs, execs, nil)
	out, err := svc.ExportJobAuditXLSX(context.Background(), jobID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = f.GetRows("Branch Distribution")
	assert.Error(t, err)
}
