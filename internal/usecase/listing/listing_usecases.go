package listing

import (
	"context"

	"github.com/ignatzorin/listing-reviews/internal/domain/entity"
	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/pkg/apperror"
	"github.com/ignatzorin/listing-reviews/internal/usecase"
)

type ListListingsUseCase struct {
	source repository.ListingSource
}

func NewListListingsUseCase(source repository.ListingSource) *ListListingsUseCase {
	return &ListListingsUseCase{source: source}
}

func (uc *ListListingsUseCase) Execute(ctx context.Context) ([]entity.Listing, error) {
	listings, err := uc.source.FetchAll(ctx)
	if err != nil {
		return nil, usecase.FromSource(err, apperror.ErrListingNotFound, "Failed to fetch listings")
	}
	if listings == nil {
		listings = []entity.Listing{}
	}
	return listings, nil
}

type GetListingUseCase struct {
	source repository.ListingSource
}

func NewGetListingUseCase(source repository.ListingSource) *GetListingUseCase {
	return &GetListingUseCase{source: source}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, rawID string) (*entity.Listing, error) {
	id, ok := usecase.ParseID(rawID)
	if !ok {
		return nil, apperror.ErrInvalidListing
	}

	l, err := uc.source.FetchOne(ctx, id)
	if err != nil {
		return nil, usecase.FromSource(err, apperror.ErrListingNotFound, "Failed to fetch listing")
	}
	return l, nil
}
