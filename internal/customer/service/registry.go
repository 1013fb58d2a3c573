package service

import (
	"context"
	"time"

	"chasqui/internal/domain"
	apperrors "chasqui/internal/errors"

	"go.uber.org/zap"
)

type Repository interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Insert(ctx context.Context, phone, name string) (uint, error)
	UpdateName(ctx context.Context, id uint, name string) error
}

// Registry resuelve un telefono de canal a su registro de cliente,
// creandolo si no existe.
type Registry struct {
	repo      Repository
	logger    *zap.Logger
	opTimeout time.Duration
}

func NewRegistry(repo Repository, logger *zap.Logger, opTimeout time.Duration) *Registry {
	return &Registry{
		repo:      repo,
		logger:    logger,
		opTimeout: opTimeout,
	}
}

// Resolve returns the single customer record for phone. A missing record is
// created with name (or the default placeholder); an existing record gets
// its name updated when a different non-empty name is supplied. A duplicate
// insert caused by a concurrent Resolve for the same new phone is recovered
// by re-reading, never surfaced.
func (s *Registry) Resolve(ctx context.Context, phone, name string) (*domain.Customer, error) {
	if phone == "" {
		return nil, apperrors.NewValidationError("phone is required", apperrors.ValidationDetail{
			Field:   "phone",
			Message: "phone must not be empty",
		})
	}

	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	customer, err := s.repo.FindByPhone(opCtx, phone)
	if err == nil {
		if name != "" && name != customer.Name {
			if err := s.repo.UpdateName(opCtx, customer.ID, name); err != nil {
				return nil, err
			}
			customer.Name = name
			s.logger.Info("customer name updated", zap.Uint("customerId", customer.ID))
		}
		return customer, nil
	}

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	createName := name
	if createName == "" {
		createName = domain.DefaultCustomerName
	}

	id, err := s.repo.Insert(opCtx, phone, createName)
	if err != nil {
		if _, ok := apperrors.IsConflictError(err); ok {
			// Otro Resolve concurrente gano la insercion.
			s.logger.Info("concurrent customer creation detected", zap.String("phone", phone))
			return s.repo.FindByPhone(opCtx, phone)
		}
		return nil, err
	}

	s.logger.Info("customer created", zap.Uint("customerId", id))

	// Releer para devolver el registro tal como quedo persistido
	// (createdAt lo asigna la base).
	return s.repo.FindByPhone(opCtx, phone)
}
