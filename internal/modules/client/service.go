package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
)

const defaultPageSize = 50

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	c := &domain.Client{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Phone: strings.TrimSpace(req.Phone),
		Notes: req.Notes,
	}
	if c.Name == "" || c.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, mapErr(err)
	}
	s.logger.Info("client created", zap.Int64("client_id", c.ID))
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateClientRequest) (*domain.Client, error) {
	c := &domain.Client{
		ID:    id,
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Phone: strings.TrimSpace(req.Phone),
		Notes: req.Notes,
	}
	if c.Name == "" || c.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, mapErr(err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapErr(err)
	}
	s.logger.Info("client deleted", zap.Int64("client_id", id))
	return nil
}

func mapErr(err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.As(err, &pgErr) && pgErr.Code == "23505":
		return ErrDuplicate
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	// the cgo-free sqlite driver reports constraint failures as plain errors
	case strings.Contains(err.Error(), "UNIQUE constraint"):
		return ErrDuplicate
	default:
		return err
	}
}
