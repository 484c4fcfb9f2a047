package handlers

import (
	"net/http"

	"evently_backend/internal/middleware"
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services"
	"evently_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	*BaseHandler
	providerService services.ProviderService
	enquiryService  services.EnquiryService
}

func NewProviderHandler(base *BaseHandler, providerService services.ProviderService, enquiryService services.EnquiryService) *ProviderHandler {
	return &ProviderHandler{
		BaseHandler:     base,
		providerService: providerService,
		enquiryService:  enquiryService,
	}
}

func (h *ProviderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Публичная витрина
	public := rg.Group("/providers")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	// Кабинет провайдера
	me := rg.Group("/provider/me")
	me.Use(middleware.AuthMiddleware())
	me.Use(middleware.RoleMiddleware(models.UserRoleProvider))
	{
		me.GET("", h.GetMine)
		me.PATCH("", h.UpdateMine)
		me.GET("/stats", h.Stats)
		me.POST("/plan", h.SelectPlan)
		me.GET("/enquiries", h.MyEnquiries)
		me.GET("/enquiries/:id", h.GetEnquiry)
		me.PATCH("/enquiries/:id/status", h.SetEnquiryStatus)
	}

	admin := rg.Group("/admin/providers")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.AdminList)
		admin.PATCH("/:id/status", h.AdminSetStatus)
		admin.DELETE("/:id", h.AdminDelete)
	}
}

// List godoc
// @Summary Каталог провайдеров
// @Description Возвращает активных провайдеров с фильтрами по услуге, типу события и локации
// @Tags providers
// @Produce json
// @Param query query string false "Поиск по названию"
// @Param location query string false "Фильтр по локации"
// @Param service query string false "Слаг услуги"
// @Param event_type query string false "Слаг типа события"
// @Success 200 {object} dto.ProviderListResponse
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	var criteria repositories.ProviderSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	response, err := h.providerService.List(db, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary Профиль провайдера
// @Tags providers
// @Produce json
// @Param id path string true "ID провайдера"
// @Success 200 {object} dto.ProviderResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /providers/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.providerService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) GetMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.providerService.GetMine(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) UpdateMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProviderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.providerService.UpdateMine(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) Stats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.providerService.Stats(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) SelectPlan(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SelectPlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.providerService.SelectPlan(db, userID, req.PlanID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) MyEnquiries(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria repositories.EnquirySearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	response, err := h.enquiryService.ListForProvider(db, userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) GetEnquiry(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.enquiryService.GetForProvider(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) SetEnquiryStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SetEnquiryStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.enquiryService.SetStatus(db, userID, c.Param("id"), models.EnquiryStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) AdminList(c *gin.Context) {
	var criteria repositories.ProviderSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	response, err := h.providerService.AdminList(db, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProviderHandler) AdminSetStatus(c *gin.Context) {
	var req dto.SetProviderStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	err := h.providerService.SetStatus(db, c.Param("id"), models.ProviderStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *ProviderHandler) AdminDelete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.providerService.AdminDelete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}
