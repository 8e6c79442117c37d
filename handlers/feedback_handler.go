package handlers

import (
	"net/http"
	"strings"

	"github.com/enecpp/financial-news-analyzer/errors"
	"github.com/enecpp/financial-news-analyzer/services"
	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles feedback submission endpoints.
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedback accepts a feedback submission and runs it through the
// backend chain. The response names the backend that absorbed the write on
// success, lists the missing fields on validation failure, and returns a
// generic retry-later message when every backend failed.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req types.FeedbackCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	outcome := h.feedbackService.Submit(c.Request.Context(), req.Name, req.Email, req.Message)

	switch outcome.Kind {
	case types.OutcomePersisted:
		c.JSON(http.StatusCreated, types.StatusResponse{
			Status:  "Feedback submitted successfully",
			Backend: outcome.Backend,
		})
	case types.OutcomeValidationFailed:
		_ = c.Error(errors.ValidationFailed(
			"All fields are required",
			"missing: "+strings.Join(outcome.MissingFields, ", "),
		))
	default:
		_ = c.Error(errors.ServiceUnavailable(
			"Unable to save your message right now, please try again later",
		))
	}
}
