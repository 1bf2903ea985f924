package models

// DefaultRatingScore - стартовый рейтинг нового игрока.
const DefaultRatingScore = 1000

type RatingEntry struct {
	ID               int    `json:"id"`
	PlayerName       string `json:"player_name"`
	TelegramUsername string `json:"telegram_username"`
	Score            int    `json:"score"`
}

type RatingInput struct {
	UserID           int    `json:"user_id"`
	PlayerName       string `json:"player_name"`
	TelegramUsername string `json:"telegram_username"`
	Score            int    `json:"score"`
}
