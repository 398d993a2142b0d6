package bonus

import (
	"context"
	"errors"
	"testing"
	"time"

	"ips-data-svc/src/internal/models"
)

type fakeRepository struct {
	bonuses []Bonus

	gotUser string
	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeRepository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Bonus, error) {
	f.gotUser = userID
	f.gotFrom = from
	f.gotTo = to

	out := make([]Bonus, 0)
	for _, b := range f.bonuses {
		if b.UserID == userID && !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestListDefaultsToTrailingThirtyDays(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)

	before := time.Now().UTC()
	if _, err := svc.List(context.Background(), "user-1", nil, nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	after := time.Now().UTC()

	if repo.gotTo.Before(before) || repo.gotTo.After(after) {
		t.Errorf("upper bound %v not in [%v, %v]", repo.gotTo, before, after)
	}
	window := repo.gotTo.Sub(repo.gotFrom)
	if window < 29*24*time.Hour || window > 31*24*time.Hour {
		t.Errorf("default window = %v, want about 30 days", window)
	}
}

func TestListSumsAmounts(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeRepository{bonuses: []Bonus{
		{UserID: "user-1", Amount: 10.5, Date: now.AddDate(0, 0, -1)},
		{UserID: "user-1", Amount: 4.5, Date: now.AddDate(0, 0, -2)},
		{UserID: "someone-else", Amount: 99, Date: now.AddDate(0, 0, -1)},
	}}
	svc := NewService(repo)

	resp, err := svc.List(context.Background(), "user-1", nil, nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Bonuses) != 2 {
		t.Errorf("got %d bonuses, want 2", len(resp.Bonuses))
	}
	if resp.TotalAmount != 15.0 {
		t.Errorf("total = %v, want 15.0", resp.TotalAmount)
	}
}

func TestListExplicitWindow(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	resp, err := svc.List(context.Background(), "user-1", &start, &end)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !repo.gotFrom.Equal(start) || !repo.gotTo.Equal(end) {
		t.Errorf("queried [%v, %v], want [%v, %v]", repo.gotFrom, repo.gotTo, start, end)
	}
	if !resp.StartDate.Equal(start) || !resp.EndDate.Equal(end) {
		t.Error("response must echo the effective window")
	}
}

func TestListInvertedWindow(t *testing.T) {
	svc := NewService(&fakeRepository{})

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.List(context.Background(), "user-1", &start, &end)
	if !errors.Is(err, models.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
