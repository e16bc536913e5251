package handlers

import (
	"github.com/alimgiray/tzroster/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP API around the given handlers
func NewRouter(rosterHandler *RosterHandler, healthHandler *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger())

	api := router.Group("/api")
	{
		api.GET("/zones", rosterHandler.ListZones)

		people := api.Group("/people")
		people.GET("", rosterHandler.ListPeople)
		people.POST("", rosterHandler.CreatePerson)
		people.GET("/export", rosterHandler.ExportPeople)
		people.POST("/reorder", rosterHandler.ReorderPeople)
		people.GET("/:id", rosterHandler.GetPerson)
		people.PUT("/:id", rosterHandler.UpdatePerson)
		people.DELETE("/:id", rosterHandler.DeletePerson)
	}

	router.GET("/health", healthHandler.HealthCheck)
	router.NoRoute(NewNotFoundHandler().NotFound)

	return router
}
