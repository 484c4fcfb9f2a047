package handlers

import (
	"net/http"

	"evently_backend/internal/middleware"
	"evently_backend/internal/models"
	"evently_backend/internal/services"
	"evently_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	*BaseHandler
	planService services.PlanService
}

func NewPlanHandler(base *BaseHandler, planService services.PlanService) *PlanHandler {
	return &PlanHandler{
		BaseHandler: base,
		planService: planService,
	}
}

func (h *PlanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Публичный прайсинг
	plans := rg.Group("/plans")
	{
		plans.GET("", h.List)
		plans.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/plans")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.AdminList)
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *PlanHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.planService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PlanHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.planService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PlanHandler) AdminList(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.planService.AdminList(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req dto.CreatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.planService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *PlanHandler) Update(c *gin.Context) {
	var req dto.UpdatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.planService.Update(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.planService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}
