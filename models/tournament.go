package models

// TournamentStatus представляет статусы жизненного цикла турнира, как их отдаёт бэкенд.
type TournamentStatus string

const (
	StatusRegistration     TournamentStatus = "registration"
	StatusLateRegistration TournamentStatus = "late_registration"
	StatusActive           TournamentStatus = "active"
	StatusActiveNoLateReg  TournamentStatus = "active_no_late_reg"
	StatusCompleted        TournamentStatus = "completed"
)

// DefaultLevelTime используется, если бэкенд не прислал level_time.
const DefaultLevelTime = 15

// Tournament - снимок турнира, полученный от бэкенда. Консоль его не изменяет.
type Tournament struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Status            TournamentStatus `json:"status"`
	DBStatus          string           `json:"db_status,omitempty"`
	RentCost          int              `json:"rent_cost"`
	RentChips         int              `json:"rent_chips"`
	RebuyCost         int              `json:"rebuy_cost"`
	RebuyChips        int              `json:"rebuy_chips"`
	AddonCost         int              `json:"addon_cost"`
	AddonChips        int              `json:"addon_chips"`
	LevelTime         int              `json:"level_time,omitempty"`
	StartTime         Timestamp        `json:"start_time"`
	LateRegEndTime    Timestamp        `json:"late_reg_end_time"`
	RegisteredPlayers int              `json:"registered_players"`
	TotalChips        int              `json:"total_chips"`
	Players           []Registration   `json:"players,omitempty"`
}

// EffectiveLevelTime возвращает длительность уровня в минутах с учётом значения по умолчанию.
func (t Tournament) EffectiveLevelTime() int {
	if t.LevelTime <= 0 {
		return DefaultLevelTime
	}
	return t.LevelTime
}

// HasPlayer сообщает, зарегистрирован ли пользователь на турнир.
func (t Tournament) HasPlayer(userID int) bool {
	for _, p := range t.Players {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// Registration - запись участника турнира.
type Registration struct {
	UserID       int    `json:"user_id"`
	GameNickname string `json:"game_nickname"`
	Rating       int    `json:"rating"`
	Chips        int    `json:"chips"`
	Rebuys       int    `json:"rebuys,omitempty"`
	Addons       int    `json:"addons,omitempty"`
}

// TournamentInput - поля формы турнира, отправляемые на создание или обновление.
type TournamentInput struct {
	UserID         int    `json:"user_id"`
	Name           string `json:"name"`
	RentCost       int    `json:"rent_cost"`
	RentChips      int    `json:"rent_chips"`
	RebuyCost      int    `json:"rebuy_cost"`
	RebuyChips     int    `json:"rebuy_chips"`
	AddonCost      int    `json:"addon_cost"`
	AddonChips     int    `json:"addon_chips"`
	LevelTime      int    `json:"level_time"`
	StartTime      string `json:"start_time"`
	LateRegEndTime string `json:"late_reg_end_time"`
}
