package integrity

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
	"github.com/lfnovo/ai-meeting-notes/pkg/config"
)

// Merge suggestion thresholds. Pairs at or above the upper bound are
// considered near-duplicates an operator should have merged already;
// pairs below the lower bound are noise.
const (
	suggestionLowerBound = 0.6
	suggestionUpperBound = 0.8
	maxSuggestions       = 10
	suggestionScanLimit  = 1000
)

// Service defines referential integrity operations over meetings,
// entities and their associations
type Service interface {
	// Associate links an entity to a meeting. Linking twice is a no-op.
	Associate(ctx context.Context, meetingID, entityID uuid.UUID) error

	// Disassociate unlinks an entity from a meeting. Unlinking a pair
	// that is not linked is a no-op.
	Disassociate(ctx context.Context, meetingID, entityID uuid.UUID) error

	// DeleteEntity removes an entity and its associations atomically
	DeleteEntity(ctx context.Context, id uuid.UUID) error

	// DeleteMeeting removes a meeting, its action items and its
	// associations atomically. Entities survive.
	DeleteMeeting(ctx context.Context, id uuid.UUID) error

	// LowUsageEntities lists entities linked to exactly one meeting,
	// newest entity first
	LowUsageEntities(ctx context.Context) ([]*entities.EntityWithMeetingContext, error)

	// BulkDelete removes a batch of entities, reporting a per-id outcome.
	// One failing id never blocks the rest.
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*entities.BulkReport, error)

	// BulkUpdateType repoints a batch of entities to a new type,
	// reporting a per-id outcome
	BulkUpdateType(ctx context.Context, ids []uuid.UUID, typeSlug string) (*entities.BulkReport, error)

	// MergeEntities folds source into target: associations move over,
	// source is removed
	MergeEntities(ctx context.Context, sourceID, targetID uuid.UUID) error

	// SuggestMerges lists pairs of same-typed entities with similar
	// names, most similar first
	SuggestMerges(ctx context.Context) ([]*entities.MergeSuggestion, error)
}

type integrityService struct {
	meetingRepo    repositories.MeetingRepository
	entityRepo     repositories.EntityRepository
	entityTypeRepo repositories.EntityTypeRepository
	cfg            *config.ProcessingConfig
	logger         *zap.Logger
}

// NewService constructs an integrity service
func NewService(
	meetingRepo repositories.MeetingRepository,
	entityRepo repositories.EntityRepository,
	entityTypeRepo repositories.EntityTypeRepository,
	cfg *config.ProcessingConfig,
	logger *zap.Logger,
) Service {
	return &integrityService{
		meetingRepo:    meetingRepo,
		entityRepo:     entityRepo,
		entityTypeRepo: entityTypeRepo,
		cfg:            cfg,
		logger:         logger,
	}
}

// Associate links an entity to a meeting
func (s *integrityService) Associate(ctx context.Context, meetingID, entityID uuid.UUID) error {
	if _, err := s.meetingRepo.FindByID(ctx, meetingID); err != nil {
		return notFoundOr(err, entities.ErrMeetingNotFound)
	}
	if _, err := s.entityRepo.FindByID(ctx, entityID); err != nil {
		return notFoundOr(err, entities.ErrEntityNotFound)
	}
	return s.meetingRepo.AddEntity(ctx, meetingID, entityID)
}

// Disassociate unlinks an entity from a meeting
func (s *integrityService) Disassociate(ctx context.Context, meetingID, entityID uuid.UUID) error {
	if _, err := s.meetingRepo.FindByID(ctx, meetingID); err != nil {
		return notFoundOr(err, entities.ErrMeetingNotFound)
	}
	return s.meetingRepo.RemoveEntity(ctx, meetingID, entityID)
}

// DeleteEntity removes an entity and its associations
func (s *integrityService) DeleteEntity(ctx context.Context, id uuid.UUID) error {
	if err := s.entityRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, entities.ErrEntityNotFound)
	}
	s.logger.Info("🗑️ Entity deleted", zap.String("entity_id", id.String()))
	return nil
}

// DeleteMeeting removes a meeting, its action items and its associations
func (s *integrityService) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, entities.ErrMeetingNotFound)
	}
	s.logger.Info("🗑️ Meeting deleted", zap.String("meeting_id", id.String()))
	return nil
}

// LowUsageEntities lists entities linked to exactly one meeting
func (s *integrityService) LowUsageEntities(ctx context.Context) ([]*entities.EntityWithMeetingContext, error) {
	return s.entityRepo.FindLowUsage(ctx)
}

// BulkDelete removes a batch of entities with a per-id outcome report
func (s *integrityService) BulkDelete(ctx context.Context, ids []uuid.UUID) (*entities.BulkReport, error) {
	if err := s.validateBatch(ids); err != nil {
		return nil, err
	}

	report := &entities.BulkReport{Requested: len(ids)}
	for _, id := range ids {
		outcome := entities.BulkOutcome{EntityID: id, Status: entities.BulkOutcomeDeleted}
		if err := s.entityRepo.Delete(ctx, id); err != nil {
			outcome.Status = entities.BulkOutcomeFailed
			outcome.Reason = notFoundOr(err, entities.ErrEntityNotFound).Error()
			report.Failed++
		} else {
			report.Succeeded++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	s.logger.Info("🗑️ Bulk entity delete finished",
		zap.Int("requested", report.Requested),
		zap.Int("deleted", report.Succeeded),
		zap.Int("failed", report.Failed))
	return report, nil
}

// BulkUpdateType repoints a batch of entities to a new type
func (s *integrityService) BulkUpdateType(ctx context.Context, ids []uuid.UUID, typeSlug string) (*entities.BulkReport, error) {
	if err := s.validateBatch(ids); err != nil {
		return nil, err
	}
	if _, err := s.entityTypeRepo.FindBySlug(ctx, typeSlug); err != nil {
		return nil, notFoundOr(err, entities.ErrEntityTypeNotFound)
	}

	report := &entities.BulkReport{Requested: len(ids)}
	for _, id := range ids {
		outcome := entities.BulkOutcome{EntityID: id, Status: entities.BulkOutcomeUpdated}
		if err := s.entityRepo.UpdateType(ctx, id, typeSlug); err != nil {
			outcome.Status = entities.BulkOutcomeFailed
			outcome.Reason = notFoundOr(err, entities.ErrEntityNotFound).Error()
			report.Failed++
		} else {
			report.Succeeded++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report, nil
}

// MergeEntities folds source into target
func (s *integrityService) MergeEntities(ctx context.Context, sourceID, targetID uuid.UUID) error {
	if sourceID == targetID {
		return fmt.Errorf("%w: cannot merge an entity into itself", entities.ErrInvalidBatch)
	}
	source, err := s.entityRepo.FindByID(ctx, sourceID)
	if err != nil {
		return notFoundOr(err, entities.ErrEntityNotFound)
	}
	target, err := s.entityRepo.FindByID(ctx, targetID)
	if err != nil {
		return notFoundOr(err, entities.ErrEntityNotFound)
	}

	links, err := s.entityRepo.CountAssociations(ctx, sourceID)
	if err != nil {
		return err
	}

	if err := s.entityRepo.Merge(ctx, sourceID, targetID); err != nil {
		return err
	}

	s.logger.Info("✅ Entities merged",
		zap.String("source", source.Name),
		zap.String("target", target.Name),
		zap.Int64("links_repointed", links))
	return nil
}

// SuggestMerges lists similar same-typed entity pairs
func (s *integrityService) SuggestMerges(ctx context.Context) ([]*entities.MergeSuggestion, error) {
	all, _, err := s.entityRepo.List(ctx, repositories.EntityFilters{Limit: suggestionScanLimit})
	if err != nil {
		return nil, err
	}

	var suggestions []*entities.MergeSuggestion
	for i, first := range all {
		for _, second := range all[i+1:] {
			if first.TypeSlug != second.TypeSlug {
				continue
			}
			score := similarity(strings.ToLower(first.Name), strings.ToLower(second.Name))
			if score >= suggestionLowerBound && score < suggestionUpperBound {
				suggestions = append(suggestions, &entities.MergeSuggestion{
					Source:     first,
					Target:     second,
					Similarity: score,
				})
			}
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

func (s *integrityService) validateBatch(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: batch is empty", entities.ErrInvalidBatch)
	}
	if len(ids) > s.cfg.MaxBulkBatch {
		return fmt.Errorf("%w: batch of %d exceeds limit of %d", entities.ErrInvalidBatch, len(ids), s.cfg.MaxBulkBatch)
	}
	return nil
}

// notFoundOr converts a gorm record-not-found into the given domain error
// and passes everything else through
func notFoundOr(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
