package models

// UserRole определяет роль пользователя в сессии.
type UserRole string

const (
	RoleDirector UserRole = "director"
	RolePlayer   UserRole = "player"
)

type User struct {
	ID               int      `json:"id"`
	Role             UserRole `json:"role"`
	FullName         string   `json:"full_name"`
	Username         string   `json:"username,omitempty"`
	TelegramUsername string   `json:"telegram_username,omitempty"`
	Profile          *Profile `json:"profile,omitempty"`
}

func (u User) IsDirector() bool {
	return u.Role == RoleDirector
}

// Profile - профиль пользователя из /api/user/profile/{id}.
type Profile struct {
	ID               int         `json:"id"`
	TelegramUsername string      `json:"telegram_username,omitempty"`
	FullName         string      `json:"full_name"`
	Role             UserRole    `json:"role"`
	Rating           *RatingInfo `json:"rating,omitempty"`
}

// RatingInfo - позиция игрока в рейтинге. Position может отсутствовать.
type RatingInfo struct {
	Score    int  `json:"score"`
	Position *int `json:"position"`
}

type DirectorCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TelegramCredentials struct {
	TelegramUsername string `json:"telegram_username"`
}
