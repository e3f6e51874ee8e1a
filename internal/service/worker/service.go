package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/worker"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{WorkerRepository: workerRepo}
}

func organizationIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", auth.ErrOrganizationMissing
	}
	return organizationID, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date %q: %w", *s, err)
	}
	return &t, nil
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.Worker, error) {
	if err := req.Validate(); err != nil {
		return worker.Worker{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return worker.Worker{}, err
	}

	visaExpiry, err := parseDatePtr(req.VisaExpiryDate)
	if err != nil {
		return worker.Worker{}, err
	}

	w := worker.Worker{
		OrganizationID:  organizationID,
		PassportNumber:  req.PassportNumber,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		FirstNameHe:     req.FirstNameHe,
		LastNameHe:      req.LastNameHe,
		Phone:           req.Phone,
		CountryOfOrigin: req.CountryOfOrigin,
		VisaExpiryDate:  visaExpiry,
		IsActive:        true,
	}

	created, err := s.WorkerRepository.Create(ctx, w)
	if err != nil {
		return worker.Worker{}, err
	}

	return created, nil
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.Worker, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return worker.Worker{}, err
	}

	return s.WorkerRepository.GetByID(ctx, id, organizationID)
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	return s.WorkerRepository.List(ctx, filter, organizationID)
}

// UpdateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.WorkerRepository.GetByID(ctx, req.ID, organizationID)
	if err != nil {
		return err
	}

	visaExpiry, err := parseDatePtr(req.VisaExpiryDate)
	if err != nil {
		return err
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.FirstNameHe = req.FirstNameHe
	existing.LastNameHe = req.LastNameHe
	existing.Phone = req.Phone
	existing.CountryOfOrigin = req.CountryOfOrigin
	if visaExpiry != nil {
		existing.VisaExpiryDate = visaExpiry
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	return s.WorkerRepository.Update(ctx, existing)
}

// DeleteWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.WorkerRepository.Delete(ctx, id, organizationID)
}
