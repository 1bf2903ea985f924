package models

// Player - игрок в административном списке.
type Player struct {
	ID               int      `json:"id"`
	TelegramUsername string   `json:"telegram_username"`
	FullName         string   `json:"full_name"`
	Role             UserRole `json:"role,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	RatingScore      int      `json:"rating_score"`
}

type PlayerInput struct {
	UserID           int    `json:"user_id"`
	TelegramUsername string `json:"telegram_username"`
	FullName         string `json:"full_name"`
}
