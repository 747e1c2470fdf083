package dto

// PatchReviewStatusRequest - тело PATCH /reviews/:id, если статус не передан в query.
type PatchReviewStatusRequest struct {
	Status string `json:"status"`
}
