package types

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

type fakeEntityTypeStore struct {
	byID    map[uuid.UUID]*entities.EntityType
	deleted []uuid.UUID
}

func newFakeEntityTypeStore(types ...*entities.EntityType) *fakeEntityTypeStore {
	f := &fakeEntityTypeStore{byID: make(map[uuid.UUID]*entities.EntityType)}
	for _, et := range types {
		f.byID[et.ID] = et
	}
	return f
}

func (f *fakeEntityTypeStore) Create(ctx context.Context, entityType *entities.EntityType) error {
	f.byID[entityType.ID] = entityType
	return nil
}

func (f *fakeEntityTypeStore) FindByID(ctx context.Context, id uuid.UUID) (*entities.EntityType, error) {
	if et, ok := f.byID[id]; ok {
		return et, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEntityTypeStore) FindBySlug(ctx context.Context, slug string) (*entities.EntityType, error) {
	for _, et := range f.byID {
		if et.Slug == slug {
			return et, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEntityTypeStore) List(ctx context.Context) ([]*entities.EntityType, error) {
	return nil, nil
}

func (f *fakeEntityTypeStore) Update(ctx context.Context, entityType *entities.EntityType) error {
	f.byID[entityType.ID] = entityType
	return nil
}

func (f *fakeEntityTypeStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeMeetingTypeStore struct {
	byID   map[uuid.UUID]*entities.MeetingType
	counts map[string]int64
}

func newFakeMeetingTypeStore(types ...*entities.MeetingType) *fakeMeetingTypeStore {
	f := &fakeMeetingTypeStore{
		byID:   make(map[uuid.UUID]*entities.MeetingType),
		counts: make(map[string]int64),
	}
	for _, mt := range types {
		f.byID[mt.ID] = mt
	}
	return f
}

func (f *fakeMeetingTypeStore) Create(ctx context.Context, meetingType *entities.MeetingType) error {
	f.byID[meetingType.ID] = meetingType
	return nil
}

func (f *fakeMeetingTypeStore) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingType, error) {
	if mt, ok := f.byID[id]; ok {
		return mt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMeetingTypeStore) FindBySlug(ctx context.Context, slug string) (*entities.MeetingType, error) {
	for _, mt := range f.byID {
		if mt.Slug == slug {
			return mt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMeetingTypeStore) List(ctx context.Context) ([]*entities.MeetingType, error) {
	return nil, nil
}

func (f *fakeMeetingTypeStore) Update(ctx context.Context, meetingType *entities.MeetingType) error {
	f.byID[meetingType.ID] = meetingType
	return nil
}

func (f *fakeMeetingTypeStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeMeetingTypeStore) CountMeetings(ctx context.Context, slug string) (int64, error) {
	return f.counts[slug], nil
}

// fakeEntityCounter only answers CountByType
type fakeEntityCounter struct {
	counts map[string]int64
}

func (f *fakeEntityCounter) Create(ctx context.Context, entity *entities.Entity) error { return nil }
func (f *fakeEntityCounter) FindByID(ctx context.Context, id uuid.UUID) (*entities.Entity, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEntityCounter) FindByName(ctx context.Context, name string) (*entities.Entity, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEntityCounter) FindOrCreateByName(ctx context.Context, candidate *entities.Entity) (*entities.Entity, bool, error) {
	return candidate, false, nil
}
func (f *fakeEntityCounter) Update(ctx context.Context, entity *entities.Entity) error { return nil }
func (f *fakeEntityCounter) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeEntityCounter) List(ctx context.Context, filters repositories.EntityFilters) ([]*entities.Entity, int64, error) {
	return nil, 0, nil
}
func (f *fakeEntityCounter) FindLowUsage(ctx context.Context) ([]*entities.EntityWithMeetingContext, error) {
	return nil, nil
}
func (f *fakeEntityCounter) CountAssociations(ctx context.Context, entityID uuid.UUID) (int64, error) {
	return 0, nil
}
func (f *fakeEntityCounter) CountByType(ctx context.Context, typeSlug string) (int64, error) {
	return f.counts[typeSlug], nil
}
func (f *fakeEntityCounter) UpdateType(ctx context.Context, entityID uuid.UUID, typeSlug string) error {
	return nil
}
func (f *fakeEntityCounter) Merge(ctx context.Context, sourceID, targetID uuid.UUID) error {
	return nil
}

func TestDeleteEntityType_SystemProtected(t *testing.T) {
	system := &entities.EntityType{ID: uuid.New(), Name: "Person", Slug: "person", IsSystem: true}
	svc := NewService(newFakeEntityTypeStore(system), newFakeMeetingTypeStore(),
		&fakeEntityCounter{}, zap.NewNop())

	err := svc.DeleteEntityType(context.Background(), system.ID)
	if !errors.Is(err, entities.ErrTypeProtected) {
		t.Fatalf("expected ErrTypeProtected got %v", err)
	}
}

func TestDeleteEntityType_InUse(t *testing.T) {
	custom := &entities.EntityType{ID: uuid.New(), Name: "Vendor", Slug: "vendor"}
	counter := &fakeEntityCounter{counts: map[string]int64{"vendor": 3}}
	svc := NewService(newFakeEntityTypeStore(custom), newFakeMeetingTypeStore(), counter, zap.NewNop())

	err := svc.DeleteEntityType(context.Background(), custom.ID)
	if !errors.Is(err, entities.ErrTypeInUse) {
		t.Fatalf("expected ErrTypeInUse got %v", err)
	}
}

func TestDeleteEntityType_UnusedCustomType(t *testing.T) {
	custom := &entities.EntityType{ID: uuid.New(), Name: "Vendor", Slug: "vendor"}
	typeRepo := newFakeEntityTypeStore(custom)
	svc := NewService(typeRepo, newFakeMeetingTypeStore(), &fakeEntityCounter{}, zap.NewNop())

	if err := svc.DeleteEntityType(context.Background(), custom.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(typeRepo.deleted) != 1 {
		t.Fatalf("delete was not forwarded to the repository")
	}
}

func TestUpdateEntityType_SystemSlugImmutable(t *testing.T) {
	system := &entities.EntityType{ID: uuid.New(), Name: "Person", Slug: "person", IsSystem: true}
	svc := NewService(newFakeEntityTypeStore(system), newFakeMeetingTypeStore(),
		&fakeEntityCounter{}, zap.NewNop())

	updated, err := svc.UpdateEntityType(context.Background(), system.ID, EntityTypeInput{
		Name: "People",
		Slug: "people",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Slug != "person" {
		t.Fatalf("system slug must not change, got %q", updated.Slug)
	}
	if updated.Name != "People" {
		t.Fatalf("name should still be editable, got %q", updated.Name)
	}
}

func TestDeleteMeetingType_SystemProtected(t *testing.T) {
	system := &entities.MeetingType{ID: uuid.New(), Name: "Daily Standup", Slug: "standup", IsSystem: true}
	svc := NewService(newFakeEntityTypeStore(), newFakeMeetingTypeStore(system),
		&fakeEntityCounter{}, zap.NewNop())

	err := svc.DeleteMeetingType(context.Background(), system.ID)
	if !errors.Is(err, entities.ErrTypeProtected) {
		t.Fatalf("expected ErrTypeProtected got %v", err)
	}
}

func TestDeleteMeetingType_InUse(t *testing.T) {
	custom := &entities.MeetingType{ID: uuid.New(), Name: "Board Meeting", Slug: "board"}
	typeRepo := newFakeMeetingTypeStore(custom)
	typeRepo.counts["board"] = 2
	svc := NewService(newFakeEntityTypeStore(), typeRepo, &fakeEntityCounter{}, zap.NewNop())

	err := svc.DeleteMeetingType(context.Background(), custom.ID)
	if !errors.Is(err, entities.ErrTypeInUse) {
		t.Fatalf("expected ErrTypeInUse got %v", err)
	}
}

func TestUpdateMeetingType_InstructionsReplaced(t *testing.T) {
	mt := &entities.MeetingType{
		ID:                  uuid.New(),
		Name:                "Daily Standup",
		Slug:                "standup",
		SummaryInstructions: "Old instructions.",
		IsSystem:            true,
	}
	svc := NewService(newFakeEntityTypeStore(), newFakeMeetingTypeStore(mt),
		&fakeEntityCounter{}, zap.NewNop())

	// Instructions are replaced wholesale, so an empty field clears it
	updated, err := svc.UpdateMeetingType(context.Background(), mt.ID, MeetingTypeInput{
		EntityInstructions: "Extract team member names.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.SummaryInstructions != "" {
		t.Fatalf("summary instructions should have been cleared, got %q", updated.SummaryInstructions)
	}
	if updated.EntityInstructions != "Extract team member names." {
		t.Fatalf("entity instructions not set, got %q", updated.EntityInstructions)
	}
	if updated.Slug != "standup" {
		t.Fatalf("system slug must not change")
	}
}

func TestGetMeetingType_Missing(t *testing.T) {
	svc := NewService(newFakeEntityTypeStore(), newFakeMeetingTypeStore(),
		&fakeEntityCounter{}, zap.NewNop())

	_, err := svc.GetMeetingType(context.Background(), "board")
	if !errors.Is(err, entities.ErrMeetingTypeNotFound) {
		t.Fatalf("expected ErrMeetingTypeNotFound got %v", err)
	}
}
