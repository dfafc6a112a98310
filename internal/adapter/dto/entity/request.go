package entity

// CreateEntityRequest represents the request to create an entity by hand
type CreateEntityRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	TypeSlug    string `json:"type_slug" validate:"required,min=1,max=50"`
	Description string `json:"description"`
}

// UpdateEntityRequest represents the request to edit an entity
type UpdateEntityRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	TypeSlug    *string `json:"type_slug,omitempty" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description,omitempty"`
}

// ListEntitiesRequest represents query parameters for listing entities
type ListEntitiesRequest struct {
	TypeSlug  *string `query:"type" validate:"omitempty,max=50"`
	Search    string  `query:"search"`
	Page      int     `query:"page" validate:"omitempty,min=1"`
	PageSize  int     `query:"page_size" validate:"omitempty,min=1,max=100"`
	SortBy    string  `query:"sort_by" validate:"omitempty,oneof=created_at name"`
	SortOrder string  `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// BulkDeleteRequest represents the request to delete a batch of entities
type BulkDeleteRequest struct {
	EntityIDs []string `json:"entity_ids" validate:"required,dive,uuid"`
}

// BulkUpdateTypeRequest represents the request to repoint a batch of
// entities to a new type
type BulkUpdateTypeRequest struct {
	EntityIDs []string `json:"entity_ids" validate:"required,dive,uuid"`
	TypeSlug  string   `json:"type_slug" validate:"required,min=1,max=50"`
}

// MergeEntitiesRequest represents the request to merge one entity into
// another
type MergeEntitiesRequest struct {
	SourceID string `json:"source_id" validate:"required,uuid"`
	TargetID string `json:"target_id" validate:"required,uuid"`
}

// CreateEntityTypeRequest represents the request to create an entity type
type CreateEntityTypeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Slug        string `json:"slug" validate:"required,min=1,max=50"`
	ColorClass  string `json:"color_class" validate:"required,max=100"`
	Description string `json:"description"`
}

// UpdateEntityTypeRequest represents the request to edit an entity type
type UpdateEntityTypeRequest struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=50"`
	Slug        string `json:"slug" validate:"omitempty,min=1,max=50"`
	ColorClass  string `json:"color_class" validate:"omitempty,max=100"`
	Description string `json:"description"`
}
