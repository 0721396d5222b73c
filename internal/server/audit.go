package server

import (
	"context"
	"errors"

	"log/slog"

	v1 "github.com/medignis/docflow/gen/docflow/v1"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/export"
)

type AuditService struct {
	v1.UnimplementedAuditServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewAuditService(svc *export.Service, logger *slog.Logger) *AuditService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditService{svc: svc, logger: logger}
}

func (s *AuditService) ExportAuditReport(ctx context.Context, req *v1.ExportAuditReportRequest) (*v1.ExportAuditReportResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportJobAuditXLSX(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("job not found")
		}
		s.logger.Error("audit.export.failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("export audit report failed")
	}
	return &v1.ExportAuditReportResponse{Xlsx: xlsx}, nil
}
