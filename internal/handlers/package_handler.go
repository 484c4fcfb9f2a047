package handlers

import (
	"net/http"

	"evently_backend/internal/middleware"
	"evently_backend/internal/models"
	"evently_backend/internal/services"
	"evently_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	*BaseHandler
	packageService services.PackageService
}

func NewPackageHandler(base *BaseHandler, packageService services.PackageService) *PackageHandler {
	return &PackageHandler{
		BaseHandler:    base,
		packageService: packageService,
	}
}

func (h *PackageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Публичный просмотр: только активные пакеты
	rg.GET("/providers/:id/packages", h.List)

	me := rg.Group("/provider/me/packages")
	me.Use(middleware.AuthMiddleware())
	me.Use(middleware.RoleMiddleware(models.UserRoleProvider))
	{
		me.GET("", h.ListMine)
		me.POST("", h.Create)
		me.PATCH("/:id", h.Update)
		me.DELETE("/:id", h.Delete)
	}
}

func (h *PackageHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.packageService.List(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PackageHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.packageService.ListMine(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PackageHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePackageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.packageService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *PackageHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePackageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.packageService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PackageHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.packageService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}
