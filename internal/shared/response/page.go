package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Template names
const (
	TemplateHome    = "home.html"
	TemplateArchive = "archive.html"
	TemplatePost    = "post.html"
	TemplateWrite   = "write.html"
	TemplateSong    = "song.html"
	TemplateError   = "error.html"
)

// User-facing messages
const (
	MsgNotFound = "Страницата не е намерена."
	MsgInternal = "Възникна грешка. Моля, опитайте отново по-късно."
)

// Page render một HTML template đã được load vào gin engine
func Page(c *gin.Context, statusCode int, name string, data gin.H) {
	c.HTML(statusCode, name, data)
}

// ErrorPage render error.html với status và message
func ErrorPage(c *gin.Context, statusCode int, message string) {
	c.HTML(statusCode, TemplateError, gin.H{
		"status":  statusCode,
		"message": message,
	})
}

func NotFoundPage(c *gin.Context) {
	ErrorPage(c, http.StatusNotFound, MsgNotFound)
}

func InternalErrorPage(c *gin.Context) {
	ErrorPage(c, http.StatusInternalServerError, MsgInternal)
}
