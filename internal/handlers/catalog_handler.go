package handlers

import (
	"net/http"

	"evently_backend/internal/middleware"
	"evently_backend/internal/models"
	"evently_backend/internal/services"
	"evently_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CatalogHandler обслуживает оба справочника: /services и /event-types
type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Публичные списки - только активные записи
	rg.GET("/services", h.ListServices)
	rg.GET("/event-types", h.ListEventTypes)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/services", h.AdminListServices)
		admin.POST("/services", h.CreateService)
		admin.PATCH("/services/:id/status", h.SetServiceStatus)
		admin.DELETE("/services/:id", h.DeleteService)

		admin.GET("/event-types", h.AdminListEventTypes)
		admin.POST("/event-types", h.CreateEventType)
		admin.PATCH("/event-types/:id/status", h.SetEventTypeStatus)
		admin.DELETE("/event-types/:id", h.DeleteEventType)
	}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.catalogService.ListServices(db, true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) ListEventTypes(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.catalogService.ListEventTypes(db, true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) AdminListServices(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.catalogService.AdminListServices(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.catalogService.CreateService(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CatalogHandler) SetServiceStatus(c *gin.Context) {
	var req dto.SetCatalogStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	err := h.catalogService.SetServiceStatus(db, c.Param("id"), models.CatalogStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.catalogService.DeleteService(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (h *CatalogHandler) AdminListEventTypes(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.catalogService.AdminListEventTypes(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) CreateEventType(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.catalogService.CreateEventType(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CatalogHandler) SetEventTypeStatus(c *gin.Context) {
	var req dto.SetCatalogStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	err := h.catalogService.SetEventTypeStatus(db, c.Param("id"), models.CatalogStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *CatalogHandler) DeleteEventType(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.catalogService.DeleteEventType(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event type deleted"})
}
