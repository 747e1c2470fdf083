package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/listing-reviews/internal/interface/http/response"
	"github.com/ignatzorin/listing-reviews/internal/usecase/review"
)

type ReviewHandler struct {
	listReviewsUC  *review.ListReviewsUseCase
	getReviewUC    *review.GetReviewUseCase
	updateStatusUC *review.UpdateReviewStatusUseCase
}

func NewReviewHandler(
	listReviewsUC *review.ListReviewsUseCase,
	getReviewUC *review.GetReviewUseCase,
	updateStatusUC *review.UpdateReviewStatusUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		listReviewsUC:  listReviewsUC,
		getReviewUC:    getReviewUC,
		updateStatusUC: updateStatusUC,
	}
}

// List обрабатывает GET /reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	page, err := h.listReviewsUC.Execute(c.Request.Context(), c.Request.URL.Query(), isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, "Reviews retrieved successfully", page.Result, page.Count, page.Offset)
}

// Get обрабатывает GET /reviews/:id.
func (h *ReviewHandler) Get(c *gin.Context) {
	r, err := h.getReviewUC.Execute(c.Request.Context(), c.Param("id"), isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Single(c, "Review retrieved successfully", r)
}

// UpdateStatus обрабатывает PATCH /reviews/:id?status=.
func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	r, err := h.updateStatusUC.Execute(c.Request.Context(), c.Param("id"), statusParam(c), isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Single(c, "Review status updated successfully", r)
}
