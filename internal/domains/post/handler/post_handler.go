package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"songblog-backend/internal/domains/post/model"
	"songblog-backend/internal/domains/post/service"
	"songblog-backend/internal/shared/apperror"
	"songblog-backend/internal/shared/response"
	"songblog-backend/pkg/logger"
)

// Handler - publish-post form
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// WriteForm - GET /write
func (h *Handler) WriteForm(c *gin.Context) {
	response.Page(c, http.StatusOK, response.TemplateWrite, formData(model.CreatePostRequest{}, ""))
}

// CreatePost - POST /write
func (h *Handler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Page(c, http.StatusBadRequest, response.TemplateWrite, formData(req, model.MsgInvalidForm))
		return
	}

	if _, err := h.service.CreatePost(c.Request.Context(), req); err != nil {
		if ve, ok := apperror.AsValidation(err); ok {
			response.Page(c, http.StatusBadRequest, response.TemplateWrite, formData(req, ve.Message))
			return
		}

		logger.Error("Create post failed", err)
		response.InternalErrorPage(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// formData - password không bao giờ được render lại
func formData(req model.CreatePostRequest, errMsg string) gin.H {
	return gin.H{
		"page_title": "Нова публикация",
		"error":      errMsg,
		"title":      req.Title,
		"text":       req.Text,
		"username":   req.Username,
	}
}
