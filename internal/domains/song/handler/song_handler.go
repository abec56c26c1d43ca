package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"songblog-backend/internal/domains/song/model"
	"songblog-backend/internal/domains/song/service"
	"songblog-backend/internal/shared/apperror"
	"songblog-backend/internal/shared/response"
	"songblog-backend/pkg/logger"
)

// Handler - song-of-the-day form
type Handler struct {
	service       service.ServiceInterface
	maxImageBytes int64
}

func NewHandler(service service.ServiceInterface, maxImageBytes int64) *Handler {
	return &Handler{
		service:       service,
		maxImageBytes: maxImageBytes,
	}
}

// SongForm - GET /song
func (h *Handler) SongForm(c *gin.Context) {
	response.Page(c, http.StatusOK, response.TemplateSong, formData(model.CreateSongRequest{Mode: model.ModeManual}, ""))
}

// CreateSong - POST /song (multipart/form-data)
func (h *Handler) CreateSong(c *gin.Context) {
	req := model.CreateSongRequest{
		Mode:       model.Mode(c.PostForm("mode")),
		Username:   c.PostForm("username"),
		Password:   c.PostForm("password"),
		Title:      c.PostForm("title"),
		Group:      c.PostForm("text"),
		SpotifyURL: c.PostForm("spotify_url"),
	}

	// mode sai thì để service trả lỗi mode, không đọc file
	if model.Mode(strings.TrimSpace(string(req.Mode))).IsValid() {
		image, err := h.readImage(c)
		if err != nil {
			logger.Error("Read uploaded image failed", err)
			response.Page(c, http.StatusBadRequest, response.TemplateSong, formData(req, model.MsgInvalidImage))
			return
		}
		req.Image = image
	}

	if _, err := h.service.CreateSong(c.Request.Context(), req); err != nil {
		if ve, ok := apperror.AsValidation(err); ok {
			response.Page(c, http.StatusBadRequest, response.TemplateSong, formData(req, ve.Message))
			return
		}

		logger.Error("Create song failed", err)
		response.InternalErrorPage(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// readImage đọc file "image" (optional). Không có file thì trả về nil, nil.
func (h *Handler) readImage(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse multipart: %w", err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	// thêm 1 byte để ImageProcessor phát hiện file vượt giới hạn
	return io.ReadAll(io.LimitReader(f, h.maxImageBytes+1))
}

// formData - password không bao giờ được render lại
func formData(req model.CreateSongRequest, errMsg string) gin.H {
	mode := string(req.Mode)
	if mode == "" {
		mode = string(model.ModeManual)
	}
	return gin.H{
		"page_title":  "Песен на деня",
		"error":       errMsg,
		"mode":        mode,
		"title":       req.Title,
		"group":       req.Group,
		"spotify_url": req.SpotifyURL,
		"username":    req.Username,
	}
}
