package models

// Table - стол турнира. Существует только после рассадки (create-tables).
type Table struct {
	ID             int    `json:"id,omitempty"`
	TableNumber    int    `json:"table_number"`
	MaxPlayers     int    `json:"max_players"`
	CurrentPlayers int    `json:"current_players"`
	Players        []Seat `json:"players"`
}

// Seat - место за столом. Пустые места бэкенд не присылает.
type Seat struct {
	SeatNumber       int    `json:"seat_number"`
	FullName         string `json:"full_name"`
	TelegramUsername string `json:"telegram_username,omitempty"`
	Rating           int    `json:"rating"`
	Chips            int    `json:"chips"`
}
