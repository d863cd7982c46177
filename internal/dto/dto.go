package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type CreateVideoRequest struct {
	RestaurantID  string `json:"restaurantId"`
	Source        string `json:"source"`
	TikTokURL     string `json:"tiktokUrl,omitempty"`
	VideoURL      string `json:"videoUrl,omitempty"`
	CreatorHandle string `json:"creatorHandle,omitempty"`
}

type CreateTicketRequest struct {
	RestaurantID string `json:"restaurantId"`
	ImageURL     string `json:"imageUrl"`
}

// ProcessTicketRequest is sent by the external OCR step once a receipt
// has been read.
type ProcessTicketRequest struct {
	Status         string   `json:"status"`
	TotalAmount    *float64 `json:"totalAmount,omitempty"`
	PeopleCount    *int     `json:"peopleCount,omitempty"`
	PricePerPerson *float64 `json:"pricePerPerson,omitempty"`
	VisitedAt      *string  `json:"visitedAt,omitempty"`
}

// SyncUserRequest carries the identity-provider payload; the route is
// public and the payload self-describes the account.
type SyncUserRequest struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}
