package resolution

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

// fakeEntityRepo keeps entities in a map keyed by name. Only the methods
// the resolver touches are implemented.
type fakeEntityRepo struct {
	byName  map[string]*entities.Entity
	failFor map[string]error
	created []string
}

func newFakeEntityRepo() *fakeEntityRepo {
	return &fakeEntityRepo{
		byName:  make(map[string]*entities.Entity),
		failFor: make(map[string]error),
	}
}

func (f *fakeEntityRepo) FindOrCreateByName(ctx context.Context, candidate *entities.Entity) (*entities.Entity, bool, error) {
	if err := f.failFor[candidate.Name]; err != nil {
		return nil, false, err
	}
	if existing, ok := f.byName[candidate.Name]; ok {
		return existing, false, nil
	}
	f.byName[candidate.Name] = candidate
	f.created = append(f.created, candidate.Name)
	return candidate, true, nil
}

func (f *fakeEntityRepo) Create(ctx context.Context, entity *entities.Entity) error { return nil }
func (f *fakeEntityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Entity, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeEntityRepo) FindByName(ctx context.Context, name string) (*entities.Entity, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeEntityRepo) Update(ctx context.Context, entity *entities.Entity) error { return nil }
func (f *fakeEntityRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeEntityRepo) List(ctx context.Context, filters repositories.EntityFilters) ([]*entities.Entity, int64, error) {
	return nil, 0, nil
}
func (f *fakeEntityRepo) FindLowUsage(ctx context.Context) ([]*entities.EntityWithMeetingContext, error) {
	return nil, nil
}
func (f *fakeEntityRepo) CountAssociations(ctx context.Context, entityID uuid.UUID) (int64, error) {
	return 0, nil
}
func (f *fakeEntityRepo) CountByType(ctx context.Context, typeSlug string) (int64, error) {
	return 0, nil
}
func (f *fakeEntityRepo) UpdateType(ctx context.Context, entityID uuid.UUID, typeSlug string) error {
	return nil
}
func (f *fakeEntityRepo) Merge(ctx context.Context, sourceID, targetID uuid.UUID) error { return nil }

func TestResolve_CreatesMissingEntities(t *testing.T) {
	repo := newFakeEntityRepo()
	svc := NewService(repo, zap.NewNop())

	resolved, err := svc.Resolve(context.Background(), []entities.EntityMention{
		{Name: "John Smith", TypeLabel: "Person"},
		{Name: "Acme", TypeLabel: "Company"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved got %d", len(resolved))
	}
	if resolved[0].TypeSlug != "person" || resolved[1].TypeSlug != "company" {
		t.Fatalf("unexpected type slugs %q %q", resolved[0].TypeSlug, resolved[1].TypeSlug)
	}
	if resolved[0].Description != extractedDescription {
		t.Fatalf("unexpected description %q", resolved[0].Description)
	}
}

func TestResolve_ReusesExistingEntityUnchanged(t *testing.T) {
	repo := newFakeEntityRepo()
	existing := entities.NewEntity("Acme", "company", "Hand-entered record")
	repo.byName["Acme"] = existing

	svc := NewService(repo, zap.NewNop())

	// The mention carries a different label; the stored record must win.
	resolved, err := svc.Resolve(context.Background(), []entities.EntityMention{
		{Name: "Acme", TypeLabel: "Project"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolved got %d", len(resolved))
	}
	if resolved[0].ID != existing.ID {
		t.Fatalf("expected the existing record to be reused")
	}
	if resolved[0].TypeSlug != "company" || resolved[0].Description != "Hand-entered record" {
		t.Fatalf("existing entity must not be modified: %+v", resolved[0])
	}
	if len(repo.created) != 0 {
		t.Fatalf("no entity should have been created")
	}
}

func TestResolve_SkipsDuplicateMentions(t *testing.T) {
	repo := newFakeEntityRepo()
	svc := NewService(repo, zap.NewNop())

	resolved, err := svc.Resolve(context.Background(), []entities.EntityMention{
		{Name: "John", TypeLabel: "Person"},
		{Name: "John", TypeLabel: "Person"},
		{Name: "John", TypeLabel: "Other"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolved got %d", len(resolved))
	}
}

func TestResolve_PartialFailureSkipsMention(t *testing.T) {
	repo := newFakeEntityRepo()
	repo.failFor["Broken"] = errors.New("db down")

	svc := NewService(repo, zap.NewNop())

	resolved, err := svc.Resolve(context.Background(), []entities.EntityMention{
		{Name: "Broken", TypeLabel: "Person"},
		{Name: "Fine", TypeLabel: "Person"},
	})
	if err != nil {
		t.Fatalf("partial failure must not fail the call: %v", err)
	}
	if len(resolved) != 1 || resolved[0].Name != "Fine" {
		t.Fatalf("expected only the surviving mention, got %+v", resolved)
	}
}

func TestMapTypeLabel(t *testing.T) {
	cases := []struct {
		label string
		want  entities.EntityTypeTag
	}{
		{"Person", entities.EntityTypeTagPerson},
		{"person", entities.EntityTypeTagPerson},
		{"  COMPANY  ", entities.EntityTypeTagCompany},
		{"Project", entities.EntityTypeTagProject},
		{"Product", entities.EntityTypeTagProject},
		{"Tool", entities.EntityTypeTagOther},
		{"Other", entities.EntityTypeTagOther},
		{"Spaceship", entities.EntityTypeTagOther},
		{"", entities.EntityTypeTagOther},
	}
	for _, tc := range cases {
		if got := MapTypeLabel(tc.label); got != tc.want {
			t.Fatalf("MapTypeLabel(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}
