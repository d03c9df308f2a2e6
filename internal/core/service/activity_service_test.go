package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

type stubActivityRepo struct {
	entries   []*domain.ActivityEntry
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, entry *domain.ActivityEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubActivityRepo) ListRecent(_ context.Context, _ int64) ([]domain.ActivityEntry, error) {
	return nil, nil
}

func TestActivityService_Process(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	input := ports.ActivityInput{
		Action:     domain.ActivityHouseCreated,
		EntityID:   "house_1",
		EntityName: "Yunusobod 15",
		OccurredAt: time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), input); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(repo.entries))
	}
	if repo.entries[0].EntityID != "house_1" || repo.entries[0].Action != domain.ActivityHouseCreated {
		t.Fatalf("unexpected entry: %+v", repo.entries[0])
	}
}

func TestActivityService_Process_InsertError(t *testing.T) {
	wantErr := errors.New("mongo down")
	svc := NewActivityService(&stubActivityRepo{insertErr: wantErr}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.ActivityInput{EntityID: "x"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}
