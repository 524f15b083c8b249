package processes

import (
	"context"
	"errors"
	"testing"
)

type fakeProcessRepo struct {
	processes map[uint]*Process
	clients   map[uint]string
	hearings  map[uint]int64
	nextID    uint
}

func newFakeProcessRepo() *fakeProcessRepo {
	return &fakeProcessRepo{
		processes: make(map[uint]*Process),
		clients:   make(map[uint]string),
		hearings:  make(map[uint]int64),
		nextID:    1,
	}
}

func (r *fakeProcessRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeProcessRepo) List(ctx context.Context, filter ListFilter) ([]ProcessWithClient, int64, error) {
	result := make([]ProcessWithClient, 0)
	for _, process := range r.processes {
		if filter.Status != "" && process.Status != filter.Status {
			continue
		}
		result = append(result, r.withClient(process))
	}
	return result, int64(len(result)), nil
}

func (r *fakeProcessRepo) GetByID(ctx context.Context, id uint) (*ProcessWithClient, error) {
	process, ok := r.processes[id]
	if !ok {
		return nil, ErrProcessNotFound
	}
	joined := r.withClient(process)
	return &joined, nil
}

func (r *fakeProcessRepo) Create(ctx context.Context, process *Process) error {
	process.ID = r.nextID
	r.nextID++
	stored := *process
	r.processes[process.ID] = &stored
	return nil
}

func (r *fakeProcessRepo) Update(ctx context.Context, process *Process) (bool, error) {
	existing, ok := r.processes[process.ID]
	if !ok {
		return false, nil
	}
	stored := *process
	stored.ClientID = existing.ClientID
	r.processes[process.ID] = &stored
	return true, nil
}

func (r *fakeProcessRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.processes[id]; !ok {
		return false, nil
	}
	delete(r.processes, id)
	return true, nil
}

func (r *fakeProcessRepo) CountByNumber(ctx context.Context, number string, excludeID uint) (int64, error) {
	var count int64
	for _, process := range r.processes {
		if process.ProcessNumber == number && process.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProcessRepo) CountHearings(ctx context.Context, processID uint) (int64, error) {
	return r.hearings[processID], nil
}

func (r *fakeProcessRepo) ClientExists(ctx context.Context, clientID uint) (bool, error) {
	_, ok := r.clients[clientID]
	return ok, nil
}

func (r *fakeProcessRepo) withClient(process *Process) ProcessWithClient {
	return ProcessWithClient{Process: *process, ClientName: r.clients[process.ClientID]}
}

func TestCreateProcessSuccess(t *testing.T) {
	repo := newFakeProcessRepo()
	repo.clients[3] = "Maria Silva"

	svc := NewService(repo)
	created, err := svc.Create(context.Background(), Input{ClientID: 3, ProcessType: "aposentadoria", ProcessNumber: " 0001 "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ProcessNumber != "0001" {
		t.Fatalf("expected trimmed number, got %q", created.ProcessNumber)
	}
	if created.Status != StatusInProgress {
		t.Fatalf("expected default status, got %q", created.Status)
	}
	if created.ClientName != "Maria Silva" {
		t.Fatalf("expected joined client name, got %q", created.ClientName)
	}
}

func TestCreateProcessClientMissing(t *testing.T) {
	repo := newFakeProcessRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Input{ClientID: 99, ProcessType: "aposentadoria"})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestCreateProcessNumberTaken(t *testing.T) {
	repo := newFakeProcessRepo()
	repo.clients[3] = "Maria"
	repo.processes[1] = &Process{ID: 1, ClientID: 3, ProcessNumber: "0001", ProcessType: "bpc", Status: StatusInProgress}

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), Input{ClientID: 3, ProcessType: "bpc", ProcessNumber: "0001"})
	if !errors.Is(err, ErrProcessNumberTaken) {
		t.Fatalf("expected ErrProcessNumberTaken, got %v", err)
	}
}

func TestCreateProcessBlankNumberNeverConflicts(t *testing.T) {
	repo := newFakeProcessRepo()
	repo.clients[3] = "Maria"
	repo.processes[1] = &Process{ID: 1, ClientID: 3, ProcessNumber: "", ProcessType: "bpc", Status: StatusInProgress}

	svc := NewService(repo)
	if _, err := svc.Create(context.Background(), Input{ClientID: 3, ProcessType: "bpc"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCreateProcessInvalidStatus(t *testing.T) {
	repo := newFakeProcessRepo()
	repo.clients[3] = "Maria"
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), Input{ClientID: 3, ProcessType: "bpc", Status: "andamento"}); err == nil {
		t.Fatalf("expected an error for unknown status")
	}
}

func TestUpdateProcessKeepsClient(t *testing.T) {
	repo := newFakeProcessRepo()
	repo.clients[3] = "Maria"
	repo.processes[1] = &Process{ID: 1, ClientID: 3, ProcessType: "bpc", Status: StatusInProgress}

	svc := NewService(repo)
	updated, err := svc.Update(context.Background(), 1, Input{ClientID: 99, ProcessType: "bpc", Status: StatusConcluded})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.ClientID != 3 {
		t.Fatalf("expected client_id unchanged, got %d", updated.ClientID)
	}
	if updated.Status != StatusConcluded {
		t.Fatalf("expected status updated, got %q", updated.Status)
	}
}

func TestUpdateProcessNotFound(t *testing.T) {
	repo := newFakeProcessRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 42, Input{ProcessType: "bpc"})
	if !errors.Is(err, ErrProcessNotFound) {
		t.Fatalf("expected ErrProcessNotFound, got %v", err)
	}
}

func TestDeleteProcessBlockedByHearings(t *testing.T) {
	repo := newFakeProcessRepo()
	repo.processes[1] = &Process{ID: 1, ClientID: 3, ProcessType: "bpc", Status: StatusInProgress}
	repo.hearings[1] = 1

	svc := NewService(repo)
	err := svc.Delete(context.Background(), 1)
	if !errors.Is(err, ErrProcessHasHearings) {
		t.Fatalf("expected ErrProcessHasHearings, got %v", err)
	}
	if _, ok := repo.processes[1]; !ok {
		t.Fatalf("process should not be deleted")
	}
}

func TestDeleteProcessSucceedsOnceHearingsGone(t *testing.T) {
	repo := newFakeProcessRepo()
	repo.processes[1] = &Process{ID: 1, ClientID: 3, ProcessType: "bpc", Status: StatusInProgress}

	svc := NewService(repo)
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.processes[1]; ok {
		t.Fatalf("expected process deleted")
	}
}
