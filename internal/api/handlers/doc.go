package handlers

// StatusResponse is the body returned by operations that only report an
// outcome, such as deletes.
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
}
