package entity

// Service is one of the informational service offerings shown on the
// services screen. The catalog is fixed at build time, nothing is persisted.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
