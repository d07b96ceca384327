// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clarifyhq/clarify/internal/chat"
)

// handleProcess accepts a multipart document upload, runs the pipeline,
// and returns the aggregated result. The temp file is removed whether the
// run succeeds or fails; a cleanup failure is logged and never masks the
// run's outcome.
func (s *Server) handleProcess(c *gin.Context) {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Success: false, Error: "No file uploaded"})
		return
	}

	if fileHeader.Size > s.cfg.Upload.MaxFileSize {
		c.JSON(http.StatusBadRequest, errorResponse{Success: false, Error: "File exceeds the maximum upload size"})
		return
	}
	if !s.allowedType(fileHeader.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, errorResponse{Success: false, Error: "Unsupported file type. Only PDF and TXT files are allowed."})
		return
	}

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		s.log.Errorw("creating upload directory", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Success: false, Error: "Processing failed."})
		return
	}

	tmpPath := filepath.Join(s.cfg.Upload.Dir, uuid.NewString()+strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		s.log.Errorw("saving upload", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Success: false, Error: "Processing failed."})
		return
	}
	defer s.removeUpload(tmpPath)

	s.log.Infow("processing upload", "filename", fileHeader.Filename, "bytes", fileHeader.Size)

	result, err := s.pipe.ProcessFile(c.Request.Context(), tmpPath)
	if err != nil {
		s.log.Warnw("pipeline failed", "filename", fileHeader.Filename, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// processTextRequest is the direct-text submission body.
type processTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// handleProcessText runs the pipeline on raw text. The text is subject to
// the same preprocessing and minimum-length check as an upload.
func (s *Server) handleProcessText(c *gin.Context) {
	var req processTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Success: false, Error: "Text is required"})
		return
	}

	result, err := s.pipe.ProcessText(c.Request.Context(), req.Text)
	if err != nil {
		s.log.Warnw("pipeline failed", "source", "text", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// chatResponse is the chat endpoint's success envelope.
type chatResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer"`
}

// handleChat answers a question about the learning context carried in the
// request body. Context is per-request only; nothing is retained between
// calls.
func (s *Server) handleChat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Success: false, Error: "Question is required"})
		return
	}

	answer, err := chat.Answer(c.Request.Context(), s.gen, req)
	if err != nil {
		s.log.Warnw("chat failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Success: false, Error: "Failed to generate answer"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{Success: true, Answer: answer})
}

// healthResponse is the health endpoint body.
type healthResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Success:   true,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// allowedType reports whether the upload MIME type is accepted. Some
// clients append parameters (e.g. "text/plain; charset=utf-8").
func (s *Server) allowedType(contentType string) bool {
	base := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	for _, t := range s.cfg.Upload.AllowedTypes {
		if base == t {
			return true
		}
	}
	return false
}

// removeUpload deletes a temp upload, logging but not propagating failure.
func (s *Server) removeUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warnw("upload cleanup failed", "path", path, "error", fmt.Errorf("removing %s: %w", path, err))
	}
}
