package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/listing-reviews/internal/interface/http/response"
	"github.com/ignatzorin/listing-reviews/internal/usecase/listing"
)

type ListingHandler struct {
	listListingsUC *listing.ListListingsUseCase
	getListingUC   *listing.GetListingUseCase
}

func NewListingHandler(listListingsUC *listing.ListListingsUseCase, getListingUC *listing.GetListingUseCase) *ListingHandler {
	return &ListingHandler{
		listListingsUC: listListingsUC,
		getListingUC:   getListingUC,
	}
}

// List обрабатывает GET /listings.
func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.listListingsUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, "Listings retrieved successfully", listings, len(listings), 0)
}

// Get обрабатывает GET /listings/:id.
func (h *ListingHandler) Get(c *gin.Context) {
	l, err := h.getListingUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Single(c, "Listing retrieved successfully", l)
}
