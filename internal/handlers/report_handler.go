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

type ReportHandler struct {
	*BaseHandler
	reportService services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.POST("", h.Create)
	}

	admin := rg.Group("/admin/reports")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.AdminList)
		admin.GET("/:id", h.AdminGet)
		admin.PATCH("/:id", h.AdminUpdate)
		admin.DELETE("/:id", h.AdminDelete)
	}
}

func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.reportService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ReportHandler) AdminList(c *gin.Context) {
	var criteria repositories.ReportSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	response, err := h.reportService.List(db, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) AdminGet(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.reportService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) AdminUpdate(c *gin.Context) {
	var req dto.UpdateReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.reportService.Update(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) AdminDelete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.reportService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted"})
}
