package handlers

import (
	"net/http"

	"evently_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct {
	*BaseHandler
	checklistService services.ChecklistService
}

func NewChecklistHandler(base *BaseHandler, checklistService services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{
		BaseHandler:      base,
		checklistService: checklistService,
	}
}

func (h *ChecklistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	checklists := rg.Group("/checklists")
	{
		checklists.GET("", h.List)
		checklists.GET("/:event_type", h.Get)
	}
}

func (h *ChecklistHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.checklistService.List())
}

func (h *ChecklistHandler) Get(c *gin.Context) {
	template, err := h.checklistService.Get(c.Param("event_type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}
