// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clarifyhq/clarify/pkg/types"
)

// errorResponse is the failure envelope: a non-success flag plus a
// sanitized message. Raw provider bodies and stack traces never reach
// the caller.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondError maps a pipeline error to an HTTP status and writes the
// failure envelope.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), errorResponse{Success: false, Error: publicMessage(err)})
}

// statusFor classifies errors: user-correctable input problems are 400,
// an empty extraction is 422, upstream provider trouble is 502, and
// anything else is 500.
func statusFor(err error) int {
	var perr *types.ProviderError
	switch {
	case types.UserCorrectable(err):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrEmptyKnowledge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrExtractionFailure), errors.As(err, &perr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage reduces an error to a caller-safe description.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrUnsupportedFormat):
		return "Unsupported file type. Only PDF and TXT files are allowed."
	case errors.Is(err, types.ErrContentTooShort):
		return "Document too short. Please provide a document with at least 50 characters."
	case errors.Is(err, types.ErrParseFailure):
		return "Could not read the uploaded document. The file may be corrupt."
	case errors.Is(err, types.ErrEmptyKnowledge):
		return "No concepts could be extracted from this document."
	case errors.Is(err, types.ErrExtractionFailure):
		return "Knowledge extraction failed. Please try again."
	default:
		var perr *types.ProviderError
		if errors.As(err, &perr) {
			return "The AI provider is currently unavailable. Please try again."
		}
		return "Processing failed."
	}
}
