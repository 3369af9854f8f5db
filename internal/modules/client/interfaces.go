package client

import (
	"context"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}
