package entities

import (
	"time"

	"github.com/google/uuid"
)

// EntityType is an admin-extensible category for entities. System types
// are seeded by migration and cannot be deleted; non-system types cannot
// be deleted while entities still reference them.
type EntityType struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(50);not null;uniqueIndex"`
	Slug        string    `json:"slug" gorm:"type:varchar(50);not null;uniqueIndex"`
	ColorClass  string    `json:"color_class" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	IsSystem    bool      `json:"is_system" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"default:now()"`
}

// TableName specifies the table name for EntityType
func (EntityType) TableName() string {
	return "entity_types"
}
