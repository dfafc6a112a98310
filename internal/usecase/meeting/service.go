package meeting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/processing"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/resolution"
)

// defaultMeetingTypeSlug is assumed when no meeting type is given
const defaultMeetingTypeSlug = "general"

// Transcriber converts an audio recording into a transcript
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

// ObjectStore persists raw audio recordings
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
}

// MeetingDetails bundles a meeting with its linked records
type MeetingDetails struct {
	Meeting     *entities.Meeting
	Entities    []*entities.Entity
	ActionItems []*entities.ActionItem
}

// CreateInput carries the fields for creating a meeting
type CreateInput struct {
	Title           string
	Date            time.Time
	Transcript      string
	MeetingTypeSlug string
}

// UpdateInput carries the editable meeting fields. Nil fields are left
// unchanged.
type UpdateInput struct {
	Title           *string
	Date            *time.Time
	Summary         *string
	MeetingTypeSlug *string
}

// ActionItemInput carries the fields for creating an action item by hand
type ActionItemInput struct {
	Description string
	Assignee    *string
	DueDate     *time.Time
}

// ActionItemUpdate carries the editable action item fields. Nil fields
// are left unchanged.
type ActionItemUpdate struct {
	Description *string
	Assignee    *string
	DueDate     *time.Time
	Status      *entities.ActionItemStatus
}

// Service defines meeting lifecycle methods
type Service interface {
	// Create processes a transcript and persists the meeting with its
	// derived summary, entities and action items
	Create(ctx context.Context, input CreateInput) (*MeetingDetails, error)

	// CreateFromAudio stores the recording, transcribes it and then
	// proceeds as Create does
	CreateFromAudio(ctx context.Context, input CreateInput, audio io.Reader, filename, contentType string) (*MeetingDetails, error)

	// Get retrieves a meeting with its entities and action items
	Get(ctx context.Context, id uuid.UUID) (*MeetingDetails, error)

	// List retrieves meetings with filters and pagination
	List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error)

	// Update edits meeting fields without reprocessing
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*entities.Meeting, error)

	// Reprocess re-runs derivation over the stored transcript, replacing
	// the summary and action items and re-resolving entities
	Reprocess(ctx context.Context, id uuid.UUID) (*MeetingDetails, error)

	// AddActionItem creates an action item on a meeting
	AddActionItem(ctx context.Context, meetingID uuid.UUID, input ActionItemInput) (*entities.ActionItem, error)

	// UpdateActionItem edits an action item
	UpdateActionItem(ctx context.Context, id uuid.UUID, input ActionItemUpdate) (*entities.ActionItem, error)

	// DeleteActionItem removes an action item
	DeleteActionItem(ctx context.Context, id uuid.UUID) error
}

type meetingService struct {
	meetingRepo     repositories.MeetingRepository
	actionItemRepo  repositories.ActionItemRepository
	meetingTypeRepo repositories.MeetingTypeRepository
	processor       processing.Service
	resolver        resolution.Service
	transcriber     Transcriber
	store           ObjectStore
	logger          *zap.Logger
}

// NewService constructs a meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	actionItemRepo repositories.ActionItemRepository,
	meetingTypeRepo repositories.MeetingTypeRepository,
	processor processing.Service,
	resolver resolution.Service,
	transcriber Transcriber,
	store ObjectStore,
	logger *zap.Logger,
) Service {
	return &meetingService{
		meetingRepo:     meetingRepo,
		actionItemRepo:  actionItemRepo,
		meetingTypeRepo: meetingTypeRepo,
		processor:       processor,
		resolver:        resolver,
		transcriber:     transcriber,
		store:           store,
		logger:          logger,
	}
}

// Create processes a transcript and persists the resulting meeting
func (s *meetingService) Create(ctx context.Context, input CreateInput) (*MeetingDetails, error) {
	return s.create(ctx, input, nil)
}

// CreateFromAudio stores the recording, transcribes it and persists the
// resulting meeting
func (s *meetingService) CreateFromAudio(ctx context.Context, input CreateInput, audio io.Reader, filename, contentType string) (*MeetingDetails, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}

	objectKey := fmt.Sprintf("audio/%s-%s", uuid.New().String(), filename)
	if err := s.store.Upload(ctx, objectKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, fmt.Errorf("failed to store audio: %w", err)
	}
	s.logger.Info("📤 Audio recording stored", zap.String("object_key", objectKey))

	transcript, err := s.transcriber.Transcribe(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe audio: %w", err)
	}
	s.logger.Info("🎙️ Audio transcribed", zap.Int("transcript_length", len(transcript)))

	input.Transcript = transcript
	return s.create(ctx, input, &objectKey)
}

func (s *meetingService) create(ctx context.Context, input CreateInput, audioObjectKey *string) (*MeetingDetails, error) {
	slug := input.MeetingTypeSlug
	if slug == "" {
		slug = defaultMeetingTypeSlug
	}
	meetingType, err := s.lookupMeetingType(ctx, slug)
	if err != nil {
		return nil, err
	}

	result, err := s.processor.Process(ctx, input.Transcript, meetingType)
	if err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = s.processor.SuggestTitle(ctx, input.Transcript)
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	record := entities.NewMeeting(title, date, input.Transcript, slug)
	record.Summary = result.Summary
	record.AudioObjectKey = audioObjectKey
	record.ProcessingMeta = processingMeta(result)

	if err := s.meetingRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	items, err := s.storeActionItems(ctx, record.ID, result.ActionItems)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveAndAssociate(ctx, record.ID, result.Entities)
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ Meeting created",
		zap.String("meeting_id", record.ID.String()),
		zap.String("title", record.Title),
		zap.Int("entities", len(resolved)),
		zap.Int("action_items", len(items)))

	return &MeetingDetails{Meeting: record, Entities: resolved, ActionItems: items}, nil
}

// Get retrieves a meeting with its entities and action items
func (s *meetingService) Get(ctx context.Context, id uuid.UUID) (*MeetingDetails, error) {
	record, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, entities.ErrMeetingNotFound)
	}

	linked, err := s.meetingRepo.FindEntities(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.actionItemRepo.FindByMeeting(ctx, id)
	if err != nil {
		return nil, err
	}

	return &MeetingDetails{Meeting: record, Entities: linked, ActionItems: items}, nil
}

// List retrieves meetings with filters and pagination
func (s *meetingService) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return s.meetingRepo.List(ctx, filters)
}

// Update edits meeting fields without reprocessing
func (s *meetingService) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*entities.Meeting, error) {
	record, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, entities.ErrMeetingNotFound)
	}

	if input.Title != nil {
		record.Title = *input.Title
	}
	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.Summary != nil {
		record.Summary = *input.Summary
	}
	if input.MeetingTypeSlug != nil {
		if _, err := s.lookupMeetingType(ctx, *input.MeetingTypeSlug); err != nil {
			return nil, err
		}
		record.MeetingTypeSlug = *input.MeetingTypeSlug
	}
	record.UpdatedAt = time.Now().UTC()

	if err := s.meetingRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Reprocess re-runs derivation over the stored transcript
func (s *meetingService) Reprocess(ctx context.Context, id uuid.UUID) (*MeetingDetails, error) {
	record, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, entities.ErrMeetingNotFound)
	}

	meetingType, err := s.lookupMeetingType(ctx, record.MeetingTypeSlug)
	if err != nil {
		return nil, err
	}

	result, err := s.processor.Process(ctx, record.Transcript, meetingType)
	if err != nil {
		return nil, err
	}

	record.Summary = result.Summary
	record.ProcessingMeta = processingMeta(result)
	record.UpdatedAt = time.Now().UTC()
	if err := s.meetingRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	// Derived action items are replaced wholesale on reprocess
	if err := s.actionItemRepo.DeleteByMeeting(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.storeActionItems(ctx, id, result.ActionItems)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveAndAssociate(ctx, id, result.Entities)
	if err != nil {
		return nil, err
	}

	s.logger.Info("🔄 Meeting reprocessed", zap.String("meeting_id", id.String()))
	return &MeetingDetails{Meeting: record, Entities: resolved, ActionItems: items}, nil
}

// AddActionItem creates an action item on a meeting
func (s *meetingService) AddActionItem(ctx context.Context, meetingID uuid.UUID, input ActionItemInput) (*entities.ActionItem, error) {
	if _, err := s.meetingRepo.FindByID(ctx, meetingID); err != nil {
		return nil, notFoundOr(err, entities.ErrMeetingNotFound)
	}

	item := entities.NewActionItem(meetingID, input.Description)
	item.Assignee = input.Assignee
	item.DueDate = input.DueDate

	if err := s.actionItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateActionItem edits an action item
func (s *meetingService) UpdateActionItem(ctx context.Context, id uuid.UUID, input ActionItemUpdate) (*entities.ActionItem, error) {
	item, err := s.actionItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, entities.ErrActionItemNotFound)
	}

	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Assignee != nil {
		item.Assignee = input.Assignee
	}
	if input.DueDate != nil {
		item.DueDate = input.DueDate
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, entities.ErrInvalidStatus
		}
		item.Status = *input.Status
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.actionItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteActionItem removes an action item
func (s *meetingService) DeleteActionItem(ctx context.Context, id uuid.UUID) error {
	if err := s.actionItemRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, entities.ErrActionItemNotFound)
	}
	return nil
}

// lookupMeetingType loads the instruction overrides for a slug. A missing
// default type is tolerated so a fresh database still processes meetings;
// any other missing slug is an error.
func (s *meetingService) lookupMeetingType(ctx context.Context, slug string) (*entities.MeetingType, error) {
	meetingType, err := s.meetingTypeRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if slug == defaultMeetingTypeSlug {
				return nil, nil
			}
			return nil, entities.ErrMeetingTypeNotFound
		}
		return nil, err
	}
	return meetingType, nil
}

func (s *meetingService) storeActionItems(ctx context.Context, meetingID uuid.UUID, descriptions []string) ([]*entities.ActionItem, error) {
	items := make([]*entities.ActionItem, 0, len(descriptions))
	for _, description := range descriptions {
		items = append(items, entities.NewActionItem(meetingID, description))
	}
	if err := s.actionItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *meetingService) resolveAndAssociate(ctx context.Context, meetingID uuid.UUID, mentions []entities.EntityMention) ([]*entities.Entity, error) {
	resolved, err := s.resolver.Resolve(ctx, mentions)
	if err != nil {
		return nil, err
	}
	for _, entity := range resolved {
		if err := s.meetingRepo.AddEntity(ctx, meetingID, entity.ID); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

func processingMeta(result *entities.ProcessingResult) datatypes.JSON {
	meta := map[string]interface{}{
		"processed_at": time.Now().UTC().Format(time.RFC3339),
		"degraded":     result.Degraded,
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}

// notFoundOr converts a gorm record-not-found into the given domain error
// and passes everything else through
func notFoundOr(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
