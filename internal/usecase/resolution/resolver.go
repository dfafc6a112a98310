package resolution

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

// extractedDescription is stamped on entities created from mentions
const extractedDescription = "Automatically extracted from meeting"

// Service defines entity resolution methods
type Service interface {
	// Resolve maps raw mentions onto canonical entities, creating any that
	// do not exist yet. Matching is by exact name; an existing entity is
	// never modified, whatever type label the mention carries. Mentions
	// that fail to resolve are skipped, the rest still resolve.
	Resolve(ctx context.Context, mentions []entities.EntityMention) ([]*entities.Entity, error)
}

type resolverService struct {
	entityRepo repositories.EntityRepository
	logger     *zap.Logger
}

// NewService constructs a resolution service
func NewService(entityRepo repositories.EntityRepository, logger *zap.Logger) Service {
	return &resolverService{entityRepo: entityRepo, logger: logger}
}

// Resolve maps mentions onto canonical entities
func (s *resolverService) Resolve(ctx context.Context, mentions []entities.EntityMention) ([]*entities.Entity, error) {
	resolved := make([]*entities.Entity, 0, len(mentions))
	seen := make(map[string]bool, len(mentions))

	for _, mention := range mentions {
		if seen[mention.Name] {
			continue
		}
		seen[mention.Name] = true

		tag := MapTypeLabel(mention.TypeLabel)
		candidate := entities.NewEntity(mention.Name, string(tag), extractedDescription)

		entity, created, err := s.entityRepo.FindOrCreateByName(ctx, candidate)
		if err != nil {
			s.logger.Error("❌ Failed to resolve entity mention",
				zap.String("name", mention.Name),
				zap.Error(err))
			continue
		}

		if created {
			s.logger.Info("✅ Created entity from mention",
				zap.String("name", entity.Name),
				zap.String("type", entity.TypeSlug))
		}
		resolved = append(resolved, entity)
	}

	return resolved, nil
}

// MapTypeLabel maps a free-text type label from the provider onto the
// closed tag set. Matching is case-insensitive; unknown labels become
// EntityTypeTagOther.
func MapTypeLabel(label string) entities.EntityTypeTag {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "person":
		return entities.EntityTypeTagPerson
	case "company":
		return entities.EntityTypeTagCompany
	case "project":
		return entities.EntityTypeTagProject
	case "product":
		// No dedicated product type yet
		return entities.EntityTypeTagProject
	case "tool":
		// No dedicated tool type yet
		return entities.EntityTypeTagOther
	case "other":
		return entities.EntityTypeTagOther
	default:
		return entities.EntityTypeTagOther
	}
}
