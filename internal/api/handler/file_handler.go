package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"course-cms/pkg/response"
	"course-cms/pkg/storage"
)

// FileHandler 本地存储驱动的文件回读
type FileHandler struct {
	files storage.Reader
}

// NewFileHandler 创建 FileHandler
func NewFileHandler(files storage.Reader) *FileHandler {
	return &FileHandler{files: files}
}

// GetFile 读取已提交的文件
// GET /files/:key
func (h *FileHandler) GetFile(c *gin.Context) {
	obj, err := h.files.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			response.NotFound(c, "File not found")
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(obj.Data)
	}
	c.Data(http.StatusOK, contentType, obj.Data)
}
