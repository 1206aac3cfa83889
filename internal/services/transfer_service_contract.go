package services

import (
	"context"

	"clinic-triage-service/internal/domain/dtos"
)

// TransferServiceContract exports patient records as FHIR resources through the job queue.
type TransferServiceContract interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	// InitiateExport enqueues a FHIR export for a registered patient and returns its id.
	InitiateExport(ctx context.Context, request dtos.InitiateTransferRequest) (exportID string, err error)
	// ExportStatus reports the progress of a previously initiated export.
	ExportStatus(ctx context.Context, exportID string) (dtos.ExportStatusResponse, error)
}
