package types

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

// EntityTypeInput carries the fields for creating or editing an entity type
type EntityTypeInput struct {
	Name        string
	Slug        string
	ColorClass  string
	Description string
}

// MeetingTypeInput carries the fields for creating or editing a meeting type
type MeetingTypeInput struct {
	Name                   string
	Slug                   string
	Description            string
	SummaryInstructions    string
	EntityInstructions     string
	ActionItemInstructions string
}

// Service defines type management methods. System types are seeded by
// migration and cannot be deleted; types still referenced by records
// cannot be deleted either.
type Service interface {
	ListEntityTypes(ctx context.Context) ([]*entities.EntityType, error)
	CreateEntityType(ctx context.Context, input EntityTypeInput) (*entities.EntityType, error)
	UpdateEntityType(ctx context.Context, id uuid.UUID, input EntityTypeInput) (*entities.EntityType, error)
	DeleteEntityType(ctx context.Context, id uuid.UUID) error

	ListMeetingTypes(ctx context.Context) ([]*entities.MeetingType, error)
	GetMeetingType(ctx context.Context, slug string) (*entities.MeetingType, error)
	CreateMeetingType(ctx context.Context, input MeetingTypeInput) (*entities.MeetingType, error)
	UpdateMeetingType(ctx context.Context, id uuid.UUID, input MeetingTypeInput) (*entities.MeetingType, error)
	DeleteMeetingType(ctx context.Context, id uuid.UUID) error
}

type typeService struct {
	entityTypeRepo  repositories.EntityTypeRepository
	meetingTypeRepo repositories.MeetingTypeRepository
	entityRepo      repositories.EntityRepository
	logger          *zap.Logger
}

// NewService constructs a type management service
func NewService(
	entityTypeRepo repositories.EntityTypeRepository,
	meetingTypeRepo repositories.MeetingTypeRepository,
	entityRepo repositories.EntityRepository,
	logger *zap.Logger,
) Service {
	return &typeService{
		entityTypeRepo:  entityTypeRepo,
		meetingTypeRepo: meetingTypeRepo,
		entityRepo:      entityRepo,
		logger:          logger,
	}
}

// ListEntityTypes retrieves all entity types
func (s *typeService) ListEntityTypes(ctx context.Context) ([]*entities.EntityType, error) {
	return s.entityTypeRepo.List(ctx)
}

// CreateEntityType creates a non-system entity type
func (s *typeService) CreateEntityType(ctx context.Context, input EntityTypeInput) (*entities.EntityType, error) {
	entityType := &entities.EntityType{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        input.Slug,
		ColorClass:  input.ColorClass,
		Description: input.Description,
	}
	if err := s.entityTypeRepo.Create(ctx, entityType); err != nil {
		return nil, err
	}
	return entityType, nil
}

// UpdateEntityType edits an entity type. The slug of a system type is
// immutable because stored entities reference it.
func (s *typeService) UpdateEntityType(ctx context.Context, id uuid.UUID, input EntityTypeInput) (*entities.EntityType, error) {
	entityType, err := s.entityTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, entities.ErrEntityTypeNotFound)
	}

	if input.Name != "" {
		entityType.Name = input.Name
	}
	if input.Slug != "" && !entityType.IsSystem {
		entityType.Slug = input.Slug
	}
	if input.ColorClass != "" {
		entityType.ColorClass = input.ColorClass
	}
	if input.Description != "" {
		entityType.Description = input.Description
	}

	if err := s.entityTypeRepo.Update(ctx, entityType); err != nil {
		return nil, err
	}
	return entityType, nil
}

// DeleteEntityType removes an entity type
func (s *typeService) DeleteEntityType(ctx context.Context, id uuid.UUID) error {
	entityType, err := s.entityTypeRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, entities.ErrEntityTypeNotFound)
	}
	if entityType.IsSystem {
		return entities.ErrTypeProtected
	}

	count, err := s.entityRepo.CountByType(ctx, entityType.Slug)
	if err != nil {
		return err
	}
	if count > 0 {
		return entities.ErrTypeInUse
	}

	return s.entityTypeRepo.Delete(ctx, id)
}

// ListMeetingTypes retrieves all meeting types
func (s *typeService) ListMeetingTypes(ctx context.Context) ([]*entities.MeetingType, error) {
	return s.meetingTypeRepo.List(ctx)
}

// GetMeetingType retrieves a meeting type by slug
func (s *typeService) GetMeetingType(ctx context.Context, slug string) (*entities.MeetingType, error) {
	meetingType, err := s.meetingTypeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, entities.ErrMeetingTypeNotFound)
	}
	return meetingType, nil
}

// CreateMeetingType creates a non-system meeting type
func (s *typeService) CreateMeetingType(ctx context.Context, input MeetingTypeInput) (*entities.MeetingType, error) {
	meetingType := &entities.MeetingType{
		ID:                     uuid.New(),
		Name:                   input.Name,
		Slug:                   input.Slug,
		Description:            input.Description,
		SummaryInstructions:    input.SummaryInstructions,
		EntityInstructions:     input.EntityInstructions,
		ActionItemInstructions: input.ActionItemInstructions,
	}
	if err := s.meetingTypeRepo.Create(ctx, meetingType); err != nil {
		return nil, err
	}
	return meetingType, nil
}

// UpdateMeetingType edits a meeting type. Instruction overrides can be
// changed on system types too; only the slug is protected.
func (s *typeService) UpdateMeetingType(ctx context.Context, id uuid.UUID, input MeetingTypeInput) (*entities.MeetingType, error) {
	meetingType, err := s.meetingTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, entities.ErrMeetingTypeNotFound)
	}

	if input.Name != "" {
		meetingType.Name = input.Name
	}
	if input.Slug != "" && !meetingType.IsSystem {
		meetingType.Slug = input.Slug
	}
	if input.Description != "" {
		meetingType.Description = input.Description
	}
	meetingType.SummaryInstructions = input.SummaryInstructions
	meetingType.EntityInstructions = input.EntityInstructions
	meetingType.ActionItemInstructions = input.ActionItemInstructions

	if err := s.meetingTypeRepo.Update(ctx, meetingType); err != nil {
		return nil, err
	}
	return meetingType, nil
}

// DeleteMeetingType removes a meeting type
func (s *typeService) DeleteMeetingType(ctx context.Context, id uuid.UUID) error {
	meetingType, err := s.meetingTypeRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, entities.ErrMeetingTypeNotFound)
	}
	if meetingType.IsSystem {
		return entities.ErrTypeProtected
	}

	count, err := s.meetingTypeRepo.CountMeetings(ctx, meetingType.Slug)
	if err != nil {
		return err
	}
	if count > 0 {
		return entities.ErrTypeInUse
	}

	s.logger.Info("🗑️ Meeting type deleted", zap.String("slug", meetingType.Slug))
	return s.meetingTypeRepo.Delete(ctx, id)
}

// notFoundOr converts a gorm record-not-found into the given domain error
// and passes everything else through
func notFoundOr(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
