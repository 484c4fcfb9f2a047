package handlers

import (
	"net/http"

	"evently_backend/internal/middleware"
	"evently_backend/internal/services"
	"evently_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	*BaseHandler
	enquiryService services.EnquiryService
}

func NewEnquiryHandler(base *BaseHandler, enquiryService services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		BaseHandler:    base,
		enquiryService: enquiryService,
	}
}

func (h *EnquiryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Форма открыта всем; залогиненному клиенту заявка
	// дополнительно привязывается к аккаунту
	enquiries := rg.Group("/enquiries")
	enquiries.Use(middleware.OptionalAuthMiddleware())
	{
		enquiries.POST("", h.Create)
	}
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req dto.CreateEnquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	userID := middleware.GetUserID(c)

	response, err := h.enquiryService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
