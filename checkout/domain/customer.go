package domain

// Customer is the reduced shape of a platform customer exposed to the
// frontend. Name and email are optional on the provider side.
type Customer struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
