package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

type stubHouseRepo struct {
	lastStatus string
	findResult []domain.House
	created    []*domain.House
	createErr  error
}

func (r *stubHouseRepo) Find(_ context.Context, status string) ([]domain.House, error) {
	r.lastStatus = status
	return r.findResult, nil
}

func (r *stubHouseRepo) Create(_ context.Context, house *domain.House) (*domain.House, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *house
	created.ID = "house_1"
	r.created = append(r.created, &created)
	return &created, nil
}

type stubRecorder struct {
	inputs []ports.ActivityInput
}

func (r *stubRecorder) Enqueue(input ports.ActivityInput) {
	r.inputs = append(r.inputs, input)
}

func validHouseInput() ports.CreateHouseInput {
	return ports.CreateHouseInput{
		Image: "https://example.com/house.jpg",
		Name:  "Yunusobod 15",
		Price: 172000,
		Rooms: 3,
		Year:  2020,
		Area:  100,
	}
}

func TestHouseService_List_AllDisablesFilter(t *testing.T) {
	repo := &stubHouseRepo{}
	svc := NewHouseService(repo, nil, zerolog.Nop())

	if _, err := svc.List(context.Background(), "all"); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastStatus != "" {
		t.Fatalf("expected no filter for status=all, got %q", repo.lastStatus)
	}

	if _, err := svc.List(context.Background(), "gold"); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastStatus != "gold" {
		t.Fatalf("expected gold filter, got %q", repo.lastStatus)
	}
}

func TestHouseService_Create_AppliesDefaults(t *testing.T) {
	repo := &stubHouseRepo{}
	recorder := &stubRecorder{}
	svc := NewHouseService(repo, recorder, zerolog.Nop())

	house, err := svc.Create(context.Background(), validHouseInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if house.Category != domain.DefaultCategory {
		t.Fatalf("expected default category, got %q", house.Category)
	}
	if house.Currency != domain.CurrencyUSD {
		t.Fatalf("expected default currency, got %q", house.Currency)
	}
	if house.AreaUnit != domain.AreaUnitKv {
		t.Fatalf("expected default area unit, got %q", house.AreaUnit)
	}
	if house.Status != domain.HouseStatusAll {
		t.Fatalf("expected default status, got %q", house.Status)
	}
	if house.CreatedAt.IsZero() || house.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}

	if len(recorder.inputs) != 1 {
		t.Fatalf("expected one activity input, got %d", len(recorder.inputs))
	}
	if recorder.inputs[0].Action != domain.ActivityHouseCreated || recorder.inputs[0].EntityID != "house_1" {
		t.Fatalf("unexpected activity input: %+v", recorder.inputs[0])
	}
}

func TestHouseService_Create_MissingRequired(t *testing.T) {
	repo := &stubHouseRepo{}
	svc := NewHouseService(repo, nil, zerolog.Nop())

	cases := map[string]func(*ports.CreateHouseInput){
		"image": func(in *ports.CreateHouseInput) { in.Image = "" },
		"name":  func(in *ports.CreateHouseInput) { in.Name = "" },
		"price": func(in *ports.CreateHouseInput) { in.Price = 0 },
		"rooms": func(in *ports.CreateHouseInput) { in.Rooms = 0 },
		"year":  func(in *ports.CreateHouseInput) { in.Year = 0 },
		"area":  func(in *ports.CreateHouseInput) { in.Area = 0 },
	}
	for name, mutate := range cases {
		input := validHouseInput()
		mutate(&input)
		if _, err := svc.Create(context.Background(), input); err != domain.ErrMissingFields {
			t.Fatalf("%s: expected ErrMissingFields, got %v", name, err)
		}
	}
	if len(repo.created) != 0 {
		t.Fatalf("no writes expected on failure paths")
	}
}

func TestHouseService_Create_ZeroPriceRejected(t *testing.T) {
	// Numeric zero counts as absent; this is the documented inherited
	// policy, exercised on its own so nobody "fixes" it by accident.
	svc := NewHouseService(&stubHouseRepo{}, nil, zerolog.Nop())

	input := validHouseInput()
	input.Price = 0
	if _, err := svc.Create(context.Background(), input); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for zero price, got %v", err)
	}
}

func TestHouseService_Create_Bounds(t *testing.T) {
	svc := NewHouseService(&stubHouseRepo{}, nil, zerolog.Nop())

	cases := map[string]func(*ports.CreateHouseInput){
		"year too early": func(in *ports.CreateHouseInput) { in.Year = 1799 },
		"year too late":  func(in *ports.CreateHouseInput) { in.Year = 2101 },
		"bad currency":   func(in *ports.CreateHouseInput) { in.Currency = "GBP" },
		"bad area unit":  func(in *ports.CreateHouseInput) { in.AreaUnit = "acre" },
		"bad status":     func(in *ports.CreateHouseInput) { in.Status = "platinum" },
		"negative price": func(in *ports.CreateHouseInput) { in.Price = -1 },
	}
	for name, mutate := range cases {
		input := validHouseInput()
		mutate(&input)
		if _, err := svc.Create(context.Background(), input); err != domain.ErrInvalidField {
			t.Fatalf("%s: expected ErrInvalidField, got %v", name, err)
		}
	}
}
