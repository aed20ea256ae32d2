package http

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"smartlearn-backend/internal/domain"
	"smartlearn-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// uploadFormFile reads an optional multipart file field and stores it in
// the file store. Missing field is not an error; the caller gets "".
func (h *Handler) uploadFormFile(c *gin.Context, field string, userID, courseID uint, kind string) (string, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if header.Size > repository.MaxFileSize {
		return "", fmt.Errorf("file too large, max %dMB", repository.MaxFileSize/(1024*1024))
	}

	contentType := header.Header.Get("Content-Type")
	if !repository.IsAllowedUpload(contentType, header.Filename) {
		return "", fmt.Errorf("file type not allowed: %s", header.Filename)
	}

	return h.FileStore.Upload(c.Request.Context(), header.Filename, contentType, file, domain.FileMetadata{
		UploadedBy: userID,
		Kind:       kind,
		CourseID:   courseID,
	})
}

// UploadFile is the generic authenticated upload endpoint.
func (h *Handler) UploadFile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	fileID, err := h.uploadFormFile(c, "file", userID, 0, c.PostForm("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file_id": fileID,
	})
}

// StreamFile streams a stored file to an authenticated client.
func (h *Handler) StreamFile(c *gin.Context) {
	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File ID is required"})
		return
	}

	stream, info, err := h.FileStore.Download(c.Request.Context(), fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	defer stream.Close()

	c.Header("Content-Type", info.ContentType)
	c.Header("Content-Length", fmt.Sprintf("%d", info.Size))
	if info.ContentType == "application/pdf" {
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"%s\"", info.Filename))
	} else {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", info.Filename))
	}

	c.Status(http.StatusOK)
	streamCopy(c, stream)
}

// streamCopy copies the body after headers are committed; a failure here
// can only be logged.
func streamCopy(c *gin.Context, r io.Reader) {
	if _, err := io.Copy(c.Writer, r); err != nil {
		log.Printf("error streaming file: %v", err)
	}
}
