package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
	"github.com/lfnovo/ai-meeting-notes/internal/infrastructure/cache"
)

const (
	meetingTypeCacheTTL       = 10 * time.Minute
	meetingTypeCacheKeyPrefix = "meeting_type:slug:"
)

// cachedMeetingTypeRepository is a read-through cache over a
// MeetingTypeRepository. Slug lookups happen on every processing call, so
// they are served from the cache; writes invalidate the affected slug.
type cachedMeetingTypeRepository struct {
	inner  repositories.MeetingTypeRepository
	store  cache.Store
	logger *zap.Logger
}

// NewCachedMeetingTypeRepository wraps a meeting type repository with a cache
func NewCachedMeetingTypeRepository(inner repositories.MeetingTypeRepository, store cache.Store, logger *zap.Logger) repositories.MeetingTypeRepository {
	return &cachedMeetingTypeRepository{inner: inner, store: store, logger: logger}
}

// FindBySlug retrieves a meeting type by its slug, preferring the cache.
// Cache failures are logged and fall through to the database.
func (r *cachedMeetingTypeRepository) FindBySlug(ctx context.Context, slug string) (*entities.MeetingType, error) {
	key := meetingTypeCacheKeyPrefix + slug

	if raw, ok, err := r.store.Get(ctx, key); err != nil {
		r.logger.Warn("meeting type cache read failed", zap.String("slug", slug), zap.Error(err))
	} else if ok {
		var meetingType entities.MeetingType
		if err := json.Unmarshal([]byte(raw), &meetingType); err == nil {
			return &meetingType, nil
		}
		// Stale or corrupt payload, drop it and reload
		_ = r.store.Delete(ctx, key)
	}

	meetingType, err := r.inner.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(meetingType); err == nil {
		if err := r.store.Set(ctx, key, string(raw), meetingTypeCacheTTL); err != nil {
			r.logger.Warn("meeting type cache write failed", zap.String("slug", slug), zap.Error(err))
		}
	}
	return meetingType, nil
}

// Create creates a new meeting type
func (r *cachedMeetingTypeRepository) Create(ctx context.Context, meetingType *entities.MeetingType) error {
	return r.inner.Create(ctx, meetingType)
}

// FindByID retrieves a meeting type by its ID
func (r *cachedMeetingTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingType, error) {
	return r.inner.FindByID(ctx, id)
}

// List retrieves all meeting types
func (r *cachedMeetingTypeRepository) List(ctx context.Context) ([]*entities.MeetingType, error) {
	return r.inner.List(ctx)
}

// Update updates a meeting type and invalidates its cached slug entry
func (r *cachedMeetingTypeRepository) Update(ctx context.Context, meetingType *entities.MeetingType) error {
	if err := r.inner.Update(ctx, meetingType); err != nil {
		return err
	}
	r.invalidate(ctx, meetingType.Slug)
	return nil
}

// Delete removes a meeting type and invalidates its cached slug entry
func (r *cachedMeetingTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	meetingType, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, meetingType.Slug)
	return nil
}

// CountMeetings returns the number of meetings using a meeting type
func (r *cachedMeetingTypeRepository) CountMeetings(ctx context.Context, slug string) (int64, error) {
	return r.inner.CountMeetings(ctx, slug)
}

func (r *cachedMeetingTypeRepository) invalidate(ctx context.Context, slug string) {
	if err := r.store.Delete(ctx, meetingTypeCacheKeyPrefix+slug); err != nil {
		r.logger.Warn("meeting type cache invalidation failed", zap.String("slug", slug), zap.Error(err))
	}
}
