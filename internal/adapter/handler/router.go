package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Router holds all handlers
type Router struct {
	meetingHandler *Meeting
	entityHandler  *Entity
	typesHandler   *Types
}

// NewRouter creates a new router with all handlers
func NewRouter(meetingHandler *Meeting, entityHandler *Entity, typesHandler *Types) *Router {
	return &Router{
		meetingHandler: meetingHandler,
		entityHandler:  entityHandler,
		typesHandler:   typesHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupEntityRoutes(v1)
	rt.setupTypeRoutes(v1)
}

// setupMeetingRoutes configures meeting and action item routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.POST("", rt.meetingHandler.Create)
	meetings.POST("/upload", rt.meetingHandler.Upload)
	meetings.POST("/suggest-title", rt.meetingHandler.SuggestTitle)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.PUT("/:id", rt.meetingHandler.Update)
	meetings.DELETE("/:id", rt.meetingHandler.Delete)
	meetings.POST("/:id/reprocess", rt.meetingHandler.Reprocess)
	meetings.POST("/:id/entities/:entityId", rt.meetingHandler.AddEntity)
	meetings.DELETE("/:id/entities/:entityId", rt.meetingHandler.RemoveEntity)
	meetings.POST("/:id/action-items", rt.meetingHandler.AddActionItem)

	actionItems := g.Group("/action-items")
	actionItems.PUT("/:id", rt.meetingHandler.UpdateActionItem)
	actionItems.DELETE("/:id", rt.meetingHandler.DeleteActionItem)
}

// setupEntityRoutes configures entity routes. Fixed paths are registered
// before the :id routes so echo does not shadow them.
func (rt *Router) setupEntityRoutes(g *echo.Group) {
	entities := g.Group("/entities")
	entities.GET("/low-usage", rt.entityHandler.LowUsage)
	entities.GET("/merge-suggestions", rt.entityHandler.MergeSuggestions)
	entities.POST("/bulk-delete", rt.entityHandler.BulkDelete)
	entities.POST("/bulk-update-type", rt.entityHandler.BulkUpdateType)
	entities.POST("/merge", rt.entityHandler.Merge)
	entities.POST("", rt.entityHandler.Create)
	entities.GET("", rt.entityHandler.List)
	entities.GET("/:id", rt.entityHandler.Get)
	entities.PUT("/:id", rt.entityHandler.Update)
	entities.DELETE("/:id", rt.entityHandler.Delete)
}

// setupTypeRoutes configures entity type and meeting type routes
func (rt *Router) setupTypeRoutes(g *echo.Group) {
	entityTypes := g.Group("/entity-types")
	entityTypes.GET("", rt.typesHandler.ListEntityTypes)
	entityTypes.POST("", rt.typesHandler.CreateEntityType)
	entityTypes.PUT("/:id", rt.typesHandler.UpdateEntityType)
	entityTypes.DELETE("/:id", rt.typesHandler.DeleteEntityType)

	meetingTypes := g.Group("/meeting-types")
	meetingTypes.GET("", rt.typesHandler.ListMeetingTypes)
	meetingTypes.GET("/:slug", rt.typesHandler.GetMeetingType)
	meetingTypes.POST("", rt.typesHandler.CreateMeetingType)
	meetingTypes.PUT("/:id", rt.typesHandler.UpdateMeetingType)
	meetingTypes.DELETE("/:id", rt.typesHandler.DeleteMeetingType)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
