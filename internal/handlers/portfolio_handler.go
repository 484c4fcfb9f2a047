package handlers

import (
	"net/http"

	"evently_backend/internal/middleware"
	"evently_backend/internal/models"
	"evently_backend/internal/services"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Публичный просмотр портфолио
	rg.GET("/providers/:id/portfolio", h.List)

	me := rg.Group("/provider/me/portfolio")
	me.Use(middleware.AuthMiddleware())
	me.Use(middleware.RoleMiddleware(models.UserRoleProvider))
	{
		me.POST("", h.Create)
		me.PATCH("/:id", h.Update)
		me.DELETE("/:id", h.Delete)
	}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.portfolioService.List(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Create принимает multipart-форму. Для type=photo обязателен файл
// в поле file, для type=video - youtube_url.
func (h *PortfolioHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePortfolioRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	switch models.PortfolioType(req.Type) {
	case models.PortfolioTypePhoto:
		file, err := c.FormFile("file")
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("File is required for photo items"))
			return
		}
		response, err := h.portfolioService.AddPhoto(c.Request.Context(), db, userID, file, req.Featured)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, response)

	case models.PortfolioTypeVideo:
		response, err := h.portfolioService.AddVideo(db, userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, response)

	default:
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unknown portfolio item type"))
	}
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePortfolioRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.portfolioService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.portfolioService.Delete(c.Request.Context(), db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted"})
}
