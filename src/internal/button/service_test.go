package button

import (
	"context"
	"errors"
	"testing"

	"ips-data-svc/src/internal/models"
	"ips-data-svc/src/internal/session"
)

type fakeRepository struct {
	inserted []*ButtonPress
	err      error
}

func (f *fakeRepository) Insert(ctx context.Context, press *ButtonPress) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, press)
	return nil
}

type fakeSessionRepository struct {
	sessions map[string]*session.Session
	getCalls int
}

func (f *fakeSessionRepository) GetByID(ctx context.Context, sessionID string) (*session.Session, error) {
	f.getCalls++
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepository) Insert(ctx context.Context, s *session.Session) error { return nil }
func (f *fakeSessionRepository) Complete(ctx context.Context, sessionID string, endTimestamp int64) error {
	return nil
}
func (f *fakeSessionRepository) Cancel(ctx context.Context, sessionID string, endTimestamp int64, remarks string) error {
	return nil
}
func (f *fakeSessionRepository) List(ctx context.Context, page, limit int) ([]*session.Session, error) {
	return nil, nil
}

type fakeCache struct {
	sessions map[string]*session.Session
}

func (f *fakeCache) GetSession(ctx context.Context, sessionID string) (*session.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeCache) CacheSession(ctx context.Context, s *session.Session) error {
	f.sessions[s.SessionID] = s
	return nil
}

func (f *fakeCache) GetAppVersionActive(ctx context.Context, versionName string) (*bool, error) {
	return nil, nil
}

func (f *fakeCache) CacheAppVersionActive(ctx context.Context, versionName string, active bool) error {
	return nil
}

func newFixture(withSession bool) (*fakeRepository, *fakeSessionRepository, *fakeCache, Service) {
	repo := &fakeRepository{}
	sessions := &fakeSessionRepository{sessions: map[string]*session.Session{}}
	cache := &fakeCache{sessions: map[string]*session.Session{}}
	if withSession {
		sessions.sessions["session-1"] = &session.Session{SessionID: "session-1"}
	}
	return repo, sessions, cache, NewButtonPressService(repo, sessions, cache)
}

func TestSubmitUnknownAction(t *testing.T) {
	_, _, _, svc := newFixture(true)

	err := svc.Submit(context.Background(), &SubmitRequest{
		SessionID: "session-1",
		Action:    "TELEPORTED",
		Timestamp: 1000,
	}, nil)
	if !errors.Is(err, models.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestSubmitInvalidTimestamp(t *testing.T) {
	_, _, _, svc := newFixture(true)

	err := svc.Submit(context.Background(), &SubmitRequest{
		SessionID: "session-1",
		Action:    string(ActionEnteredRestaurantBuilding),
		Timestamp: 0,
	}, nil)
	if !errors.Is(err, models.ErrInvalidSample) {
		t.Fatalf("expected ErrInvalidSample, got %v", err)
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	repo, _, _, svc := newFixture(false)

	err := svc.Submit(context.Background(), &SubmitRequest{
		SessionID: "missing",
		Action:    string(ActionEnteredRestaurantBuilding),
		Timestamp: 1000,
	}, nil)
	if !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Error("nothing should be recorded for an unknown session")
	}
}

func TestSubmitRecordsPress(t *testing.T) {
	repo, _, _, svc := newFixture(true)

	uid := "user-1"
	floor := 4
	err := svc.Submit(context.Background(), &SubmitRequest{
		SessionID:  "session-1",
		Action:     string(ActionGoingUp8FloorsInLift),
		Timestamp:  1234,
		FloorIndex: &floor,
	}, &uid)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("recorded %d presses, want 1", len(repo.inserted))
	}
	press := repo.inserted[0]
	if press.Action != ActionGoingUp8FloorsInLift {
		t.Errorf("action = %q", press.Action)
	}
	if press.FloorIndex == nil || *press.FloorIndex != floor {
		t.Errorf("floor index = %v, want %d", press.FloorIndex, floor)
	}
	if !press.IsSynced {
		t.Error("expected press to be marked synced")
	}
}

func TestSubmitUsesSessionCache(t *testing.T) {
	repo, sessions, cache, svc := newFixture(true)

	req := &SubmitRequest{
		SessionID: "session-1",
		Action:    string(ActionEnteredElevator),
		Timestamp: 1000,
	}

	if err := svc.Submit(context.Background(), req, nil); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, ok := cache.sessions["session-1"]; !ok {
		t.Fatal("expected session to be cached after store lookup")
	}

	storeLookups := sessions.getCalls
	if err := svc.Submit(context.Background(), req, nil); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if sessions.getCalls != storeLookups {
		t.Error("second submit should resolve the session from cache")
	}
	if len(repo.inserted) != 2 {
		t.Errorf("recorded %d presses, want 2", len(repo.inserted))
	}
}
