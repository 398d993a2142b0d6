package session

import (
	"context"
	"errors"
	"testing"

	"ips-data-svc/src/internal/models"
)

type fakeRepository struct {
	sessions map[string]*Session

	insertErr error
	listPage  int
	listLimit int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sessions: make(map[string]*Session)}
}

func (f *fakeRepository) GetByID(ctx context.Context, sessionID string) (*Session, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeRepository) Insert(ctx context.Context, session *Session) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.sessions[session.SessionID]; ok {
		return models.ErrSessionExists
	}
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeRepository) Complete(ctx context.Context, sessionID string, endTimestamp int64) error {
	s, ok := f.sessions[sessionID]
	if !ok {
		return models.ErrSessionNotFound
	}
	s.Status = StatusCompleted
	s.EndTimestamp = &endTimestamp
	return nil
}

func (f *fakeRepository) Cancel(ctx context.Context, sessionID string, endTimestamp int64, remarks string) error {
	s, ok := f.sessions[sessionID]
	if !ok {
		return models.ErrSessionNotFound
	}
	s.Status = StatusRejected
	s.EndTimestamp = &endTimestamp
	s.Remarks = &remarks
	return nil
}

func (f *fakeRepository) List(ctx context.Context, page, limit int) ([]*Session, error) {
	f.listPage = page
	f.listLimit = limit
	return nil, nil
}

const validID = "0b9c1a54-3a7e-4c1d-9f0e-8a4b2c6d1e5f"

func strPtr(s string) *string { return &s }

func TestCreateRejectsNonUUID(t *testing.T) {
	svc := NewSessionService(newFakeRepository())

	_, err := svc.Create(context.Background(), "not-a-uuid", 1000, nil)
	if !errors.Is(err, models.ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)

	if _, err := svc.Create(context.Background(), validID, 1000, nil); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), validID, 2000, nil)
	if !errors.Is(err, models.ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}
}

func TestCreateInitialState(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)

	if _, err := svc.Create(context.Background(), validID, 1000, strPtr("user-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	s := repo.sessions[validID]
	if s.Status != StatusInProgress {
		t.Errorf("status = %q, want %q", s.Status, StatusInProgress)
	}
	if s.PaymentStatus != PaymentUnpaid {
		t.Errorf("payment status = %q, want %q", s.PaymentStatus, PaymentUnpaid)
	}
	if !s.IsSynced {
		t.Error("expected session to be marked synced on server-side create")
	}
	if s.EndTimestamp != nil {
		t.Error("expected no end timestamp on create")
	}
}

func TestCloseUnknownSession(t *testing.T) {
	svc := NewSessionService(newFakeRepository())

	err := svc.Close(context.Background(), validID, 2000)
	if !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestCloseTwice(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)

	if _, err := svc.Create(context.Background(), validID, 1000, nil); err != nil {
		t.Fatal(err)
	}
	if err := svc.Close(context.Background(), validID, 2000); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	err := svc.Close(context.Background(), validID, 3000)
	if !errors.Is(err, models.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestCloseTimestampBoundary(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)

	if _, err := svc.Create(context.Background(), validID, 1000, nil); err != nil {
		t.Fatal(err)
	}

	// Equal to start is rejected, one past it is accepted.
	if err := svc.Close(context.Background(), validID, 1000); !errors.Is(err, models.ErrInvalidTimestamp) {
		t.Fatalf("end == start: expected ErrInvalidTimestamp, got %v", err)
	}
	if err := svc.Close(context.Background(), validID, 500); !errors.Is(err, models.ErrInvalidTimestamp) {
		t.Fatalf("end < start: expected ErrInvalidTimestamp, got %v", err)
	}
	if err := svc.Close(context.Background(), validID, 1001); err != nil {
		t.Fatalf("end > start: unexpected error %v", err)
	}
}

func TestCancelOwnership(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)

	if _, err := svc.Create(context.Background(), validID, 1000, strPtr("owner")); err != nil {
		t.Fatal(err)
	}

	if err := svc.Cancel(context.Background(), validID, "intruder"); !errors.Is(err, models.ErrNotSessionOwner) {
		t.Fatalf("expected ErrNotSessionOwner, got %v", err)
	}

	if err := svc.Cancel(context.Background(), validID, "owner"); err != nil {
		t.Fatalf("owner cancel failed: %v", err)
	}

	s := repo.sessions[validID]
	if s.Status != StatusRejected {
		t.Errorf("status = %q, want %q", s.Status, StatusRejected)
	}
	if s.Remarks == nil || *s.Remarks != "Cancelled by user" {
		t.Errorf("remarks = %v, want Cancelled by user", s.Remarks)
	}
	if s.EndTimestamp == nil || *s.EndTimestamp <= 0 {
		t.Error("expected end timestamp to be set on cancel")
	}
}

func TestCancelAnonymousSession(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)

	if _, err := svc.Create(context.Background(), validID, 1000, nil); err != nil {
		t.Fatal(err)
	}

	err := svc.Cancel(context.Background(), validID, "anyone")
	if !errors.Is(err, models.ErrNotSessionOwner) {
		t.Fatalf("expected ErrNotSessionOwner for ownerless session, got %v", err)
	}
}

func TestCancelTerminalStates(t *testing.T) {
	for _, status := range []string{StatusCompleted, StatusApproved, StatusRejected} {
		repo := newFakeRepository()
		svc := NewSessionService(repo)

		if _, err := svc.Create(context.Background(), validID, 1000, strPtr("owner")); err != nil {
			t.Fatal(err)
		}
		repo.sessions[validID].Status = status

		err := svc.Cancel(context.Background(), validID, "owner")
		if !errors.Is(err, models.ErrSessionTerminal) {
			t.Errorf("status %q: expected ErrSessionTerminal, got %v", status, err)
		}
	}
}

func TestListClampsPagination(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 50},
		{-3, -1, 1, 50},
		{2, 500, 2, 100},
		{1, 100, 1, 100},
		{5, 25, 5, 25},
	}

	for _, tc := range cases {
		repo := newFakeRepository()
		svc := NewSessionService(repo)

		if _, err := svc.List(context.Background(), tc.page, tc.limit); err != nil {
			t.Fatalf("list(%d, %d) failed: %v", tc.page, tc.limit, err)
		}
		if repo.listPage != tc.wantPage || repo.listLimit != tc.wantLimit {
			t.Errorf("list(%d, %d) used page=%d limit=%d, want page=%d limit=%d",
				tc.page, tc.limit, repo.listPage, repo.listLimit, tc.wantPage, tc.wantLimit)
		}
	}
}
