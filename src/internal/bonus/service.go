package bonus

import (
	"context"
	"time"

	"ips-data-svc/src/internal/models"
)

const defaultWindowDays = 30

type Service interface {
	List(ctx context.Context, userID string, start, end *time.Time) (*ListResponse, error)
}

type service struct {
	repository Repository
}

func NewService(repository Repository) Service {
	return &service{repository: repository}
}

// List returns the user's bonuses in the given window, newest first. A missing
// window defaults to the trailing 30 days.
func (s *service) List(ctx context.Context, userID string, start, end *time.Time) (*ListResponse, error) {
	now := time.Now().UTC()

	to := now
	if end != nil {
		to = end.UTC()
	}
	from := to.AddDate(0, 0, -defaultWindowDays)
	if start != nil {
		from = start.UTC()
	}
	if from.After(to) {
		return nil, models.ErrInvalidDateRange
	}

	bonuses, err := s.repository.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, b := range bonuses {
		total += b.Amount
	}

	return &ListResponse{
		Bonuses:     bonuses,
		TotalAmount: total,
		StartDate:   from,
		EndDate:     to,
	}, nil
}
