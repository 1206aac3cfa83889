package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"clinic-triage-service/internal/adapters"
	"clinic-triage-service/internal/domain"
	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/fhir/mappers"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const PatientExportQueue = "patient_export_jobs"

// ExportJobData is the queue payload of one export.
type ExportJobData struct {
	ExportID    string          `json:"export_id"`
	PatientID   string          `json:"patient_id"`
	PatientFHIR json.RawMessage `json:"patient_fhir"`
	IsEmergency bool            `json:"is_emergency"`
}

// TransferServiceImpl implements TransferServiceContract.
type TransferServiceImpl struct {
	records       RecordServiceContract
	queueAdapter  adapters.QueueAdapter
	logger        zerolog.Logger
	serviceCtx    context.Context
	serviceCancel context.CancelFunc

	mu      sync.RWMutex
	exports map[string]*dtos.ExportStatusResponse
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	records RecordServiceContract,
	queueAdapter adapters.QueueAdapter,
	logger zerolog.Logger,
) TransferServiceContract {
	ctx, cancel := context.WithCancel(context.Background())
	return &TransferServiceImpl{
		records:       records,
		queueAdapter:  queueAdapter,
		logger:        logger.With().Str("service", "transfer").Logger(),
		serviceCtx:    ctx,
		serviceCancel: cancel,
		exports:       make(map[string]*dtos.ExportStatusResponse),
	}
}

// Start launches the export queue consumer.
func (s *TransferServiceImpl) Start(ctx context.Context) error {
	if err := s.queueAdapter.StartConsuming(s.serviceCtx, PatientExportQueue, s.handlePatientExportJob); err != nil {
		return fmt.Errorf("failed to start consumer for %s: %w", PatientExportQueue, err)
	}
	s.logger.Info().Str("queue", PatientExportQueue).Msg("Transfer service started")
	return nil
}

// Stop detaches the export queue consumer and cancels in-flight jobs.
func (s *TransferServiceImpl) Stop(ctx context.Context) error {
	err := s.queueAdapter.StopConsuming(ctx, PatientExportQueue)
	s.serviceCancel()
	if err != nil {
		return fmt.Errorf("failed to stop consumer for %s: %w", PatientExportQueue, err)
	}
	s.logger.Info().Msg("Transfer service stopped")
	return nil
}

// InitiateExport maps the patient to FHIR and enqueues the export job.
func (s *TransferServiceImpl) InitiateExport(ctx context.Context, request dtos.InitiateTransferRequest) (string, error) {
	if err := request.Validate(); err != nil {
		return "", err
	}
	patientID := strings.TrimSpace(request.PatientID)

	patient, err := s.records.GetPatient(ctx, patientID)
	if err != nil {
		return "", err
	}

	patientFHIR, err := mappers.MapPatientToFHIR(patient)
	if err != nil {
		return "", fmt.Errorf("FHIR mapping failed for patient %s: %w", patientID, err)
	}

	exportID := uuid.NewString()
	jobBytes, err := json.Marshal(ExportJobData{
		ExportID:    exportID,
		PatientID:   patientID,
		PatientFHIR: patientFHIR,
		IsEmergency: request.IsEmergency,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode export job: %w", err)
	}

	s.setStatus(exportID, &dtos.ExportStatusResponse{
		TransferProgress: dtos.TransferProgress{
			TransferID: exportID,
			Status:     dtos.ExportPending,
			Message:    "Export queued.",
		},
		PatientID: patientID,
	})

	if err := s.queueAdapter.Publish(ctx, PatientExportQueue, jobBytes); err != nil {
		s.setStatus(exportID, &dtos.ExportStatusResponse{
			TransferProgress: dtos.TransferProgress{
				TransferID: exportID,
				Status:     dtos.ExportFailed,
				Message:    err.Error(),
			},
			PatientID: patientID,
		})
		return "", fmt.Errorf("failed to enqueue export job: %w", err)
	}

	s.logger.Info().Str("export_id", exportID).Str("patient_id", patientID).Bool("emergency", request.IsEmergency).Msg("Export job queued")
	return exportID, nil
}

// ExportStatus returns the last known state of an export.
func (s *TransferServiceImpl) ExportStatus(ctx context.Context, exportID string) (dtos.ExportStatusResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, ok := s.exports[exportID]
	if !ok {
		return dtos.ExportStatusResponse{}, domain.NewNotFoundError("export", exportID)
	}
	return *status, nil
}

func (s *TransferServiceImpl) setStatus(exportID string, status *dtos.ExportStatusResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exports[exportID] = status
}

// handlePatientExportJob completes an export taken from the queue.
func (s *TransferServiceImpl) handlePatientExportJob(ctx context.Context, jobData []byte) error {
	var job ExportJobData
	if err := json.Unmarshal(jobData, &job); err != nil {
		return fmt.Errorf("failed to decode export job: %w", err)
	}

	s.setStatus(job.ExportID, &dtos.ExportStatusResponse{
		TransferProgress: dtos.TransferProgress{
			TransferID: job.ExportID,
			Status:     dtos.ExportCompleted,
			Message:    "Export completed.",
		},
		PatientID:  job.PatientID,
		FHIRBundle: job.PatientFHIR,
	})

	s.logger.Info().Str("export_id", job.ExportID).Str("patient_id", job.PatientID).Int("bytes", len(job.PatientFHIR)).Msg("Export job completed")
	return nil
}
