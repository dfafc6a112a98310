package integrity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
	"github.com/lfnovo/ai-meeting-notes/pkg/config"
)

// fakeIntegrityEntityRepo keeps entities in a map keyed by id
type fakeIntegrityEntityRepo struct {
	byID     map[uuid.UUID]*entities.Entity
	listAll  []*entities.Entity
	merged   [][2]uuid.UUID
	countErr error
}

func newFakeIntegrityEntityRepo(all ...*entities.Entity) *fakeIntegrityEntityRepo {
	f := &fakeIntegrityEntityRepo{byID: make(map[uuid.UUID]*entities.Entity), listAll: all}
	for _, e := range all {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeIntegrityEntityRepo) Create(ctx context.Context, entity *entities.Entity) error {
	f.byID[entity.ID] = entity
	return nil
}

func (f *fakeIntegrityEntityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Entity, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIntegrityEntityRepo) FindByName(ctx context.Context, name string) (*entities.Entity, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIntegrityEntityRepo) FindOrCreateByName(ctx context.Context, candidate *entities.Entity) (*entities.Entity, bool, error) {
	return candidate, false, nil
}

func (f *fakeIntegrityEntityRepo) Update(ctx context.Context, entity *entities.Entity) error {
	return nil
}

func (f *fakeIntegrityEntityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeIntegrityEntityRepo) List(ctx context.Context, filters repositories.EntityFilters) ([]*entities.Entity, int64, error) {
	return f.listAll, int64(len(f.listAll)), nil
}

func (f *fakeIntegrityEntityRepo) FindLowUsage(ctx context.Context) ([]*entities.EntityWithMeetingContext, error) {
	return nil, nil
}

func (f *fakeIntegrityEntityRepo) CountAssociations(ctx context.Context, entityID uuid.UUID) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return 0, nil
}

func (f *fakeIntegrityEntityRepo) CountByType(ctx context.Context, typeSlug string) (int64, error) {
	return 0, nil
}

func (f *fakeIntegrityEntityRepo) UpdateType(ctx context.Context, entityID uuid.UUID, typeSlug string) error {
	e, ok := f.byID[entityID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.TypeSlug = typeSlug
	return nil
}

func (f *fakeIntegrityEntityRepo) Merge(ctx context.Context, sourceID, targetID uuid.UUID) error {
	if _, ok := f.byID[sourceID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, sourceID)
	f.merged = append(f.merged, [2]uuid.UUID{sourceID, targetID})
	return nil
}

// fakeMeetingRepo tracks entity links per meeting
type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
	links    map[[2]uuid.UUID]bool
}

func newFakeMeetingRepo(meetings ...*entities.Meeting) *fakeMeetingRepo {
	f := &fakeMeetingRepo{
		meetings: make(map[uuid.UUID]*entities.Meeting),
		links:    make(map[[2]uuid.UUID]bool),
	}
	for _, m := range meetings {
		f.meetings[m.ID] = m
	}
	return f
}

func (f *fakeMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	f.meetings[meeting.ID] = meeting
	return nil
}

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	if m, ok := f.meetings[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMeetingRepo) Update(ctx context.Context, meeting *entities.Meeting) error { return nil }

func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.meetings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.meetings, id)
	return nil
}

func (f *fakeMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (f *fakeMeetingRepo) AddEntity(ctx context.Context, meetingID, entityID uuid.UUID) error {
	f.links[[2]uuid.UUID{meetingID, entityID}] = true
	return nil
}

func (f *fakeMeetingRepo) RemoveEntity(ctx context.Context, meetingID, entityID uuid.UUID) error {
	delete(f.links, [2]uuid.UUID{meetingID, entityID})
	return nil
}

func (f *fakeMeetingRepo) FindEntities(ctx context.Context, meetingID uuid.UUID) ([]*entities.Entity, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) FindByEntity(ctx context.Context, entityID uuid.UUID) ([]*entities.Meeting, error) {
	return nil, nil
}

// fakeEntityTypeRepo recognizes a fixed slug set
type fakeEntityTypeRepo struct {
	slugs map[string]bool
}

func (f *fakeEntityTypeRepo) Create(ctx context.Context, entityType *entities.EntityType) error {
	return nil
}

func (f *fakeEntityTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.EntityType, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEntityTypeRepo) FindBySlug(ctx context.Context, slug string) (*entities.EntityType, error) {
	if f.slugs[slug] {
		return &entities.EntityType{Slug: slug}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEntityTypeRepo) List(ctx context.Context) ([]*entities.EntityType, error) {
	return nil, nil
}

func (f *fakeEntityTypeRepo) Update(ctx context.Context, entityType *entities.EntityType) error {
	return nil
}

func (f *fakeEntityTypeRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func newTestIntegrityService(
	meetingRepo repositories.MeetingRepository,
	entityRepo repositories.EntityRepository,
	typeRepo repositories.EntityTypeRepository,
) Service {
	cfg := &config.ProcessingConfig{
		DerivationTimeout: time.Second,
		RetryMaxElapsed:   time.Second,
		MaxBulkBatch:      100,
	}
	return NewService(meetingRepo, entityRepo, typeRepo, cfg, zap.NewNop())
}

func TestAssociate_MissingMeeting(t *testing.T) {
	entity := entities.NewEntity("Acme", "company", "")
	svc := newTestIntegrityService(
		newFakeMeetingRepo(),
		newFakeIntegrityEntityRepo(entity),
		&fakeEntityTypeRepo{})

	err := svc.Associate(context.Background(), uuid.New(), entity.ID)
	if !errors.Is(err, entities.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound got %v", err)
	}
}

func TestAssociate_MissingEntity(t *testing.T) {
	meeting := entities.NewMeeting("Standup", time.Now(), "t", "general")
	svc := newTestIntegrityService(
		newFakeMeetingRepo(meeting),
		newFakeIntegrityEntityRepo(),
		&fakeEntityTypeRepo{})

	err := svc.Associate(context.Background(), meeting.ID, uuid.New())
	if !errors.Is(err, entities.ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound got %v", err)
	}
}

func TestAssociateAndDisassociate(t *testing.T) {
	meeting := entities.NewMeeting("Standup", time.Now(), "t", "general")
	entity := entities.NewEntity("Acme", "company", "")
	meetingRepo := newFakeMeetingRepo(meeting)
	svc := newTestIntegrityService(meetingRepo, newFakeIntegrityEntityRepo(entity), &fakeEntityTypeRepo{})

	if err := svc.Associate(context.Background(), meeting.ID, entity.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !meetingRepo.links[[2]uuid.UUID{meeting.ID, entity.ID}] {
		t.Fatalf("link was not recorded")
	}

	if err := svc.Disassociate(context.Background(), meeting.ID, entity.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unlinking again stays a no-op
	if err := svc.Disassociate(context.Background(), meeting.ID, entity.ID); err != nil {
		t.Fatalf("repeated disassociate must be a no-op: %v", err)
	}
}

func TestBulkDelete_EmptyBatch(t *testing.T) {
	svc := newTestIntegrityService(newFakeMeetingRepo(), newFakeIntegrityEntityRepo(), &fakeEntityTypeRepo{})

	_, err := svc.BulkDelete(context.Background(), nil)
	if !errors.Is(err, entities.ErrInvalidBatch) {
		t.Fatalf("expected ErrInvalidBatch got %v", err)
	}
}

func TestBulkDelete_OversizedBatch(t *testing.T) {
	svc := newTestIntegrityService(newFakeMeetingRepo(), newFakeIntegrityEntityRepo(), &fakeEntityTypeRepo{})

	ids := make([]uuid.UUID, 101)
	for i := range ids {
		ids[i] = uuid.New()
	}
	_, err := svc.BulkDelete(context.Background(), ids)
	if !errors.Is(err, entities.ErrInvalidBatch) {
		t.Fatalf("expected ErrInvalidBatch got %v", err)
	}
}

func TestBulkDelete_PerIDOutcomes(t *testing.T) {
	known := entities.NewEntity("Acme", "company", "")
	unknown := uuid.New()
	svc := newTestIntegrityService(newFakeMeetingRepo(), newFakeIntegrityEntityRepo(known), &fakeEntityTypeRepo{})

	report, err := svc.BulkDelete(context.Background(), []uuid.UUID{unknown, known.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Requested != 2 || report.Succeeded != 1 || report.Failed != 1 {
		t.Fatalf("unexpected report counts: %+v", report)
	}
	if report.Outcomes[0].Status != entities.BulkOutcomeFailed || report.Outcomes[0].Reason == "" {
		t.Fatalf("first outcome should fail with a reason: %+v", report.Outcomes[0])
	}
	if report.Outcomes[1].Status != entities.BulkOutcomeDeleted {
		t.Fatalf("second outcome should be deleted: %+v", report.Outcomes[1])
	}
}

func TestBulkUpdateType_UnknownTypeSlug(t *testing.T) {
	known := entities.NewEntity("Acme", "company", "")
	svc := newTestIntegrityService(newFakeMeetingRepo(), newFakeIntegrityEntityRepo(known), &fakeEntityTypeRepo{})

	_, err := svc.BulkUpdateType(context.Background(), []uuid.UUID{known.ID}, "spaceship")
	if !errors.Is(err, entities.ErrEntityTypeNotFound) {
		t.Fatalf("expected ErrEntityTypeNotFound got %v", err)
	}
}

func TestBulkUpdateType_PerIDOutcomes(t *testing.T) {
	known := entities.NewEntity("Acme", "company", "")
	svc := newTestIntegrityService(
		newFakeMeetingRepo(),
		newFakeIntegrityEntityRepo(known),
		&fakeEntityTypeRepo{slugs: map[string]bool{"project": true}})

	report, err := svc.BulkUpdateType(context.Background(), []uuid.UUID{known.ID, uuid.New()}, "project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Succeeded != 1 || report.Failed != 1 {
		t.Fatalf("unexpected report counts: %+v", report)
	}
	if known.TypeSlug != "project" {
		t.Fatalf("entity type was not updated")
	}
}

func TestMergeEntities_SelfMerge(t *testing.T) {
	svc := newTestIntegrityService(newFakeMeetingRepo(), newFakeIntegrityEntityRepo(), &fakeEntityTypeRepo{})

	id := uuid.New()
	err := svc.MergeEntities(context.Background(), id, id)
	if !errors.Is(err, entities.ErrInvalidBatch) {
		t.Fatalf("expected ErrInvalidBatch got %v", err)
	}
}

func TestMergeEntities(t *testing.T) {
	source := entities.NewEntity("Jon Smith", "person", "")
	target := entities.NewEntity("John Smith", "person", "")
	entityRepo := newFakeIntegrityEntityRepo(source, target)
	svc := newTestIntegrityService(newFakeMeetingRepo(), entityRepo, &fakeEntityTypeRepo{})

	if err := svc.MergeEntities(context.Background(), source.ID, target.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entityRepo.merged) != 1 {
		t.Fatalf("merge was not forwarded to the repository")
	}
	if _, ok := entityRepo.byID[source.ID]; ok {
		t.Fatalf("source entity must be gone after merge")
	}
}

func TestMergeEntities_LinkCountFailureAborts(t *testing.T) {
	source := entities.NewEntity("Jon Smith", "person", "")
	target := entities.NewEntity("John Smith", "person", "")
	entityRepo := newFakeIntegrityEntityRepo(source, target)
	entityRepo.countErr = errors.New("connection reset")
	svc := newTestIntegrityService(newFakeMeetingRepo(), entityRepo, &fakeEntityTypeRepo{})

	if err := svc.MergeEntities(context.Background(), source.ID, target.ID); err == nil {
		t.Fatalf("expected the association count failure to surface")
	}
	if len(entityRepo.merged) != 0 {
		t.Fatalf("merge must not run when source links cannot be read")
	}
}

func TestSuggestMerges_WindowAndOrder(t *testing.T) {
	// Two project pairs inside the window: Marketing Plan/Marketing Team
	// at ~0.79 and Acme Corp/Acme Inc at ~0.71. John/Jon Smith score
	// ~0.95 and stay out; Billing pairs with nothing.
	plan := entities.NewEntity("Marketing Plan", "project", "")
	team := entities.NewEntity("Marketing Team", "project", "")
	corp := entities.NewEntity("Acme Corp", "project", "")
	inc := entities.NewEntity("Acme Inc", "project", "")
	billing := entities.NewEntity("Billing", "project", "")
	john := entities.NewEntity("John Smith", "person", "")
	jon := entities.NewEntity("Jon Smith", "person", "")

	entityRepo := newFakeIntegrityEntityRepo(plan, team, corp, inc, billing, john, jon)
	svc := newTestIntegrityService(newFakeMeetingRepo(), entityRepo, &fakeEntityTypeRepo{})

	suggestions, err := svc.SuggestMerges(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions got %d: %+v", len(suggestions), suggestions)
	}
	for _, s := range suggestions {
		if s.Source.TypeSlug != s.Target.TypeSlug {
			t.Fatalf("cross-type suggestion: %+v", s)
		}
		if s.Similarity < suggestionLowerBound || s.Similarity >= suggestionUpperBound {
			t.Fatalf("similarity %v outside the suggestion window", s.Similarity)
		}
	}
	// Most similar pair first
	if suggestions[0].Source.Name != "Marketing Plan" || suggestions[0].Target.Name != "Marketing Team" {
		t.Fatalf("unexpected top suggestion: %+v", suggestions[0])
	}
	if suggestions[1].Source.Name != "Acme Corp" || suggestions[1].Target.Name != "Acme Inc" {
		t.Fatalf("unexpected second suggestion: %+v", suggestions[1])
	}
}
