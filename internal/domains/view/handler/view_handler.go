package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	postmodel "songblog-backend/internal/domains/post/model"
	"songblog-backend/internal/domains/view/service"
	"songblog-backend/internal/shared/response"
	"songblog-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler - read-only pages
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Home - GET /
func (h *Handler) Home(c *gin.Context) {
	v, err := h.service.Home(c.Request.Context())
	if err != nil {
		logger.Error("Load home view failed", err)
		response.InternalErrorPage(c)
		return
	}

	response.Page(c, http.StatusOK, response.TemplateHome, gin.H{
		"title":       v.Title,
		"text":        v.Text,
		"author":      v.Author,
		"song_title":  v.SongTitle,
		"song_group":  v.SongGroup,
		"song_image":  v.SongImage,
		"song_author": v.SongAuthor,
	})
}

// Archive - GET /archive
func (h *Handler) Archive(c *gin.Context) {
	items, err := h.service.Archive(c.Request.Context())
	if err != nil {
		logger.Error("Load archive failed", err)
		response.InternalErrorPage(c)
		return
	}

	response.Page(c, http.StatusOK, response.TemplateArchive, gin.H{
		"page_title": "Архив",
		"posts":      items,
	})
}

// ExportArchive - GET /archive/export.xlsx
func (h *Handler) ExportArchive(c *gin.Context) {
	f, err := h.service.ExportArchive(c.Request.Context())
	if err != nil {
		logger.Error("Export archive failed", err)
		response.InternalErrorPage(c)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("archive-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		logger.Error("Write xlsx failed", err)
	}
}

// Post - GET /blog/:post_id
func (h *Handler) Post(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFoundPage(c)
		return
	}

	v, err := h.service.Post(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			response.NotFoundPage(c)
			return
		}
		logger.Error("Load post failed", err)
		response.InternalErrorPage(c)
		return
	}

	response.Page(c, http.StatusOK, response.TemplatePost, gin.H{
		"page_title": v.Title,
		"title":      v.Title,
		"text":       v.Text,
		"author":     v.Author,
		"created_at": v.CreatedAt,
	})
}
