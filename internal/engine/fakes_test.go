package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

// In-memory repository fakes. They mirror the persistence semantics the
// engine relies on (append-only audit rows, conditional lease updates)
// without a database.

type fakeStepRepo struct {
	mu    sync.Mutex
	steps []entity.PipelineStep
}

func (f *fakeStepRepo) Create(_ context.Context, params repository.CreateStepParams) (*entity.PipelineStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	step := entity.PipelineStep{
		ID:              uuid.New(),
		DocumentClassID: params.DocumentClassID,
		Name:            params.Name,
		Prompt:          params.Prompt,
		Order:           params.Order,
		Enabled:         params.Enabled,
		IsBranching:     params.IsBranching,
		BranchingField:  params.BranchingField,
		PostBranching:   params.PostBranching,
		BranchLabels:    params.BranchLabels,
		StopConditions:  params.StopConditions,
		OutputSchema:    params.OutputSchema,
	}
	f.steps = append(f.steps, step)
	return &step, nil
}

func (f *fakeStepRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PipelineStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.steps {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeStepRepo) ListEnabled(_ context.Context, classID *uuid.UUID) ([]entity.PipelineStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.PipelineStep, 0, len(f.steps))
	for _, s := range f.steps {
		if !s.Enabled {
			continue
		}
		if s.DocumentClassID == nil {
			out = append(out, s)
			continue
		}
		if classID != nil && *s.DocumentClassID == *classID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeStepRepo) List(_ context.Context) ([]entity.PipelineStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.PipelineStep(nil), f.steps...), nil
}

func (f *fakeStepRepo) SetEnabled(_ context.Context, id uuid.UUID, enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.steps {
		if f.steps[i].ID == id {
			f.steps[i].Enabled = enabled
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeClassRepo struct {
	classes []entity.DocumentClass
}

func (f *fakeClassRepo) Create(_ context.Context, name, description string) (*entity.DocumentClass, error) {
	class := entity.DocumentClass{ID: uuid.New(), Name: name, Description: description}
	f.classes = append(f.classes, class)
	return &class, nil
}

func (f *fakeClassRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.DocumentClass, error) {
	for _, c := range f.classes {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeClassRepo) GetByName(_ context.Context, name string) (*entity.DocumentClass, error) {
	for _, c := range f.classes {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeClassRepo) List(_ context.Context) ([]entity.DocumentClass, error) {
	return append([]entity.DocumentClass(nil), f.classes...), nil
}

type fakeJobRepo struct {
	mu        sync.Mutex
	jobs      map[uuid.UUID]*entity.Job
	artifacts map[uuid.UUID][]byte
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:      map[uuid.UUID]*entity.Job{},
		artifacts: map[uuid.UUID][]byte{},
	}
}

func (f *fakeJobRepo) Create(_ context.Context, params repository.CreateJobParams) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	consent := params.Consent
	if consent == "" {
		consent = constants.ConsentUnknown
	}
	job := &entity.Job{
		ID:          uuid.New(),
		Filename:    params.Filename,
		ContentType: params.ContentType,
		FileSize:    len(params.Artifact),
		Status:      string(constants.JobStatusUploaded),
		Consent:     string(consent),
		CreatedAt:   time.Now(),
	}
	f.jobs[job.ID] = job
	f.artifacts[job.ID] = params.Artifact
	return cloneJob(job), nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneJob(job), nil
}

func (f *fakeJobRepo) GetArtifact(_ context.Context, id uuid.UUID) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[id]; !ok {
		return nil, common.ErrNotFound
	}
	return f.artifacts[id], nil
}

func (f *fakeJobRepo) MarkRunning(_ context.Context, id uuid.UUID) error {
	return f.update(id, func(j *entity.Job) {
		j.Status = string(constants.JobStatusRunning)
		now := time.Now()
		j.StartedAt = &now
	})
}

func (f *fakeJobRepo) SetDocumentClass(_ context.Context, id, classID uuid.UUID) error {
	return f.update(id, func(j *entity.Job) {
		cid := classID
		j.DocumentClassID = &cid
	})
}

func (f *fakeJobRepo) SetResult(_ context.Context, id uuid.UUID, result json.RawMessage) error {
	return f.update(id, func(j *entity.Job) { j.Result = result })
}

func (f *fakeJobRepo) SetAuxText(_ context.Context, id uuid.UUID, text string) error {
	return f.update(id, func(j *entity.Job) { j.AuxText = &text })
}

func (f *fakeJobRepo) ClearAuxText(_ context.Context, id uuid.UUID) error {
	return f.update(id, func(j *entity.Job) { j.AuxText = nil })
}

func (f *fakeJobRepo) RequestCancel(_ context.Context, id uuid.UUID) error {
	return f.update(id, func(j *entity.Job) { j.CancelRequested = true })
}

func (f *fakeJobRepo) IsCancelRequested(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return false, common.ErrNotFound
	}
	return job.CancelRequested, nil
}

func (f *fakeJobRepo) Finish(_ context.Context, id uuid.UUID, status constants.JobStatus, errorMessage string) error {
	if !status.IsTerminal() {
		return common.ErrInvalidInput
	}
	return f.update(id, func(j *entity.Job) {
		if constants.JobStatus(j.Status).IsTerminal() {
			panic(fmt.Sprintf("job %s finished twice", id))
		}
		j.Status = string(status)
		now := time.Now()
		j.FinishedAt = &now
		if errorMessage != "" {
			j.ErrorMessage = &errorMessage
		}
	})
}

func (f *fakeJobRepo) update(id uuid.UUID, fn func(*entity.Job)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	fn(job)
	return nil
}

func cloneJob(j *entity.Job) *entity.Job {
	c := *j
	return &c
}

type fakeExecRepo struct {
	mu   sync.Mutex
	rows []entity.StepExecution
}

func (f *fakeExecRepo) Record(_ context.Context, params repository.RecordExecutionParams) (*entity.StepExecution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.JobID == params.JobID && row.Position == params.Position {
			return nil, fmt.Errorf("duplicate position %d for job %s", params.Position, params.JobID)
		}
	}
	row := entity.StepExecution{
		ID:            uuid.New(),
		JobID:         params.JobID,
		StepID:        params.StepID,
		Position:      params.Position,
		StepName:      params.StepName,
		OutputSummary: params.OutputSummary,
		Metadata:      params.Metadata,
		StartedAt:     params.StartedAt,
		FinishedAt:    params.FinishedAt,
	}
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeExecRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]entity.StepExecution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.StepExecution, 0)
	for _, row := range f.rows {
		if row.JobID == jobID {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeExecRepo) BranchDistribution(_ context.Context, stepID uuid.UUID) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dist := map[string]int{}
	for _, row := range f.rows {
		if row.StepID != stepID {
			continue
		}
		meta, err := DecodeMetadata(row.Metadata)
		if err != nil || meta.Branch == nil {
			continue
		}
		dist[meta.Branch.Kind+":"+meta.Branch.Label]++
	}
	return dist, nil
}

type fakeLeaseRepo struct {
	mu     sync.Mutex
	leases map[uuid.UUID]entity.JobLease
	now    func() time.Time

	// renewFailAfter forces ErrStaleLease after N successful renewals (-1 off)
	renewFailAfter int
	renewCount     int
}

func newFakeLeaseRepo() *fakeLeaseRepo {
	return &fakeLeaseRepo{
		leases:         map[uuid.UUID]entity.JobLease{},
		now:            time.Now,
		renewFailAfter: -1,
	}
}

func (f *fakeLeaseRepo) Acquire(_ context.Context, jobID uuid.UUID, holder string, ttl time.Duration) (*entity.JobLease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.now()
	if existing, ok := f.leases[jobID]; ok && existing.ExpiresAt.After(now) && existing.Holder != holder {
		return nil, common.ErrLeaseHeld
	}
	lease := entity.JobLease{JobID: jobID, Holder: holder, AcquiredAt: now, ExpiresAt: now.Add(ttl)}
	f.leases[jobID] = lease
	return &lease, nil
}

func (f *fakeLeaseRepo) Renew(_ context.Context, jobID uuid.UUID, holder string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.renewFailAfter >= 0 && f.renewCount >= f.renewFailAfter {
		return common.ErrStaleLease
	}
	f.renewCount++
	now := f.now()
	lease, ok := f.leases[jobID]
	if !ok || lease.Holder != holder || !lease.ExpiresAt.After(now) {
		return common.ErrStaleLease
	}
	lease.ExpiresAt = now.Add(ttl)
	f.leases[jobID] = lease
	return nil
}

func (f *fakeLeaseRepo) Release(_ context.Context, jobID uuid.UUID, holder string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lease, ok := f.leases[jobID]; ok && lease.Holder == holder {
		delete(f.leases, jobID)
	}
	return nil
}

// scriptedCapability returns canned outputs keyed by step name and records
// the invocation order.
type scriptedCapability struct {
	mu      sync.Mutex
	outputs map[string]StepOutput
	errs    map[string]error
	invoked []string
}

func newScriptedCapability() *scriptedCapability {
	return &scriptedCapability{
		outputs: map[string]StepOutput{},
		errs:    map[string]error{},
	}
}

func (c *scriptedCapability) Invoke(_ context.Context, step entity.PipelineStep, _ JobContext) (StepOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invoked = append(c.invoked, step.Name)
	if err, ok := c.errs[step.Name]; ok {
		return StepOutput{}, err
	}
	if out, ok := c.outputs[step.Name]; ok {
		return out, nil
	}
	return StepOutput{Fields: map[string]any{"step": step.Name}}, nil
}
