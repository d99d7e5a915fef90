// Package handlers is the HTTP surface the presentation layer calls.
// It maps the store contract onto REST routes, degrades list-style
// reads to empty collections when the backend is unavailable, and
// surfaces NotFound on point reads and mutations.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pipelinepro-server/config"
	"pipelinepro-server/models"
	"pipelinepro-server/services"
	"pipelinepro-server/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Stores     *store.Stores
	Config     *config.Config
	Engine     *services.StageEngine
	Cloudinary *services.CloudinaryService
}

func New(cfg *config.Config, stores *store.Stores, cloudinary *services.CloudinaryService) *Handler {
	return &Handler{
		Stores:     stores,
		Config:     cfg,
		Engine:     services.NewStageEngine(stores.Deals),
		Cloudinary: cloudinary,
	}
}

// Register attaches all API routes. Mutating routes go through the auth
// middleware, which passes everything through when auth is not
// configured.
func (h *Handler) Register(router *gin.Engine) {
	api := router.Group("/api/v1")
	guarded := api.Group("", h.AuthMiddleware())

	api.POST("/auth/login", h.Login)

	api.GET("/contacts", h.ListContacts)
	api.GET("/contacts/:id", h.GetContact)
	api.GET("/contacts/:id/activities", h.GetContactActivities)
	guarded.POST("/contacts", h.CreateContact)
	guarded.PUT("/contacts/:id", h.UpdateContact)
	guarded.DELETE("/contacts/:id", h.DeleteContact)
	guarded.POST("/contacts/:id/avatar", h.UploadContactAvatar)

	api.GET("/companies", h.ListCompanies)
	api.GET("/companies/:id", h.GetCompany)
	api.GET("/companies/:id/stats", h.GetCompanyStats)
	guarded.POST("/companies", h.CreateCompany)
	guarded.PUT("/companies/:id", h.UpdateCompany)
	guarded.DELETE("/companies/:id", h.DeleteCompany)

	api.GET("/deals", h.ListDeals)
	api.GET("/deals/pipeline", h.GetDealPipeline)
	api.GET("/deals/:id", h.GetDeal)
	api.GET("/deals/:id/activities", h.GetDealActivities)
	guarded.POST("/deals", h.CreateDeal)
	guarded.PUT("/deals/:id", h.UpdateDeal)
	guarded.PUT("/deals/:id/stage", h.TransitionDealStage)
	guarded.DELETE("/deals/:id", h.DeleteDeal)

	api.GET("/activities", h.ListActivities)
	api.GET("/activities/:id", h.GetActivity)
	guarded.POST("/activities", h.CreateActivity)
	guarded.PUT("/activities/:id", h.UpdateActivity)
	guarded.DELETE("/activities/:id", h.DeleteActivity)

	api.GET("/dashboard/stats", h.GetDashboardStats)
}

// parseID validates the :id path parameter. Ids are positive integers
// assigned by the stores.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// respondStoreError maps the store failure taxonomy to status codes.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Record store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// emptyOnUnavailable implements the list-read degradation: when the
// backend is unreachable the presentation layer gets an empty
// collection and reuses its empty-state path.
func emptyOnUnavailable[T any](items []T, err error) ([]T, error) {
	if err != nil && errors.Is(err, store.ErrUnavailable) {
		return []T{}, nil
	}
	return items, err
}

// resolveContactName maps a weak contact reference to a display name; a
// dangling id resolves to a placeholder, never an error.
func resolveContactName(contacts []models.Contact, id *int) string {
	if id == nil {
		return ""
	}
	for _, c := range contacts {
		if c.ID == *id {
			return c.FullName()
		}
	}
	return "Unknown Contact"
}

// resolveDealName maps a weak deal reference to a display name.
func resolveDealName(deals []models.Deal, id *int) string {
	if id == nil {
		return ""
	}
	for _, d := range deals {
		if d.ID == *id {
			return d.Name
		}
	}
	return "Unknown Deal"
}
