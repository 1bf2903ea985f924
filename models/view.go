package models

// ActionKind - идентификатор элемента управления в представлении.
type ActionKind string

const (
	ActionRegister     ActionKind = "register"
	ActionShowTables   ActionKind = "show_tables"
	ActionStart        ActionKind = "start"
	ActionCloseLateReg ActionKind = "close_late_reg"
	ActionComplete     ActionKind = "complete"
	ActionCreateTables ActionKind = "create_tables"
	ActionClose        ActionKind = "close"
	ActionUpdateChips  ActionKind = "update_chips"
	ActionEdit         ActionKind = "edit"
	ActionDelete       ActionKind = "delete"
	ActionCreate       ActionKind = "create"
	ActionNavigate     ActionKind = "navigate"
	ActionLogout       ActionKind = "logout"
)

// Action - декларативное описание кнопки. Method/Href заполняет слой привязки (handlers).
type Action struct {
	Kind    ActionKind `json:"action"`
	Label   string     `json:"label"`
	Target  string     `json:"target,omitempty"`
	Method  string     `json:"method,omitempty"`
	Href    string     `json:"href,omitempty"`
	Confirm string     `json:"confirm,omitempty"`
}

// StatusBadge - CSS-класс и подпись статуса турнира.
type StatusBadge struct {
	Class string `json:"class"`
	Text  string `json:"text"`
}

type RosterRow struct {
	UserID        int    `json:"user_id"`
	Nickname      string `json:"nickname"`
	Rating        int    `json:"rating"`
	Chips         int    `json:"chips"`
	ChipsDisplay  string `json:"chips_display"`
	Rebuys        int    `json:"rebuys"`
	Addons        int    `json:"addons"`
	IsViewer      bool   `json:"is_viewer"`
	ChipsEditable bool   `json:"chips_editable"`
	// ChipsAction присутствует только у редактируемых строк.
	ChipsAction *Action `json:"chips_action,omitempty"`
}

type Roster struct {
	Title         string      `json:"title"`
	SortedByChips bool        `json:"sorted_by_chips"`
	Rows          []RosterRow `json:"rows"`
	Empty         string      `json:"empty,omitempty"`
}

type TournamentDetailView struct {
	ID                int         `json:"id"`
	Name              string      `json:"name"`
	Status            StatusBadge `json:"status"`
	RentCost          string      `json:"rent_cost"`
	StartingChips     string      `json:"starting_chips"`
	LevelTime         string      `json:"level_time"`
	RegisteredPlayers string      `json:"registered_players"`
	TotalChips        string      `json:"total_chips"`
	StartTime         string      `json:"start_time"`
	LateRegEndTime    string      `json:"late_reg_end_time"`
	Roster            Roster      `json:"roster"`
	Actions           []Action    `json:"actions"`
	Tables            *TablesView `json:"tables,omitempty"`
}

type SeatView struct {
	SeatNumber   int    `json:"seat_number"`
	FullName     string `json:"full_name"`
	Rating       int    `json:"rating"`
	Chips        int    `json:"chips"`
	ChipsDisplay string `json:"chips_display"`
}

type TableView struct {
	Number    int        `json:"table_number"`
	Title     string     `json:"title"`
	Occupancy string     `json:"occupancy"`
	Seats     []SeatView `json:"seats"`
	Empty     string     `json:"empty,omitempty"`
}

type TablesView struct {
	TournamentID int         `json:"tournament_id"`
	Tables       []TableView `json:"tables"`
	Empty        string      `json:"empty,omitempty"`
}

type CostLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TournamentCard struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Status    StatusBadge `json:"status"`
	Costs     []CostLine  `json:"costs"`
	StartTime string      `json:"start_time"`
	Open      Action      `json:"open"`
	Actions   []Action    `json:"actions,omitempty"`
}

type TournamentListView struct {
	Title  string           `json:"title"`
	Filter string           `json:"filter,omitempty"`
	Create *Action          `json:"create,omitempty"`
	Cards  []TournamentCard `json:"cards"`
	Empty  string           `json:"empty,omitempty"`
}

type RatingRow struct {
	ID               int      `json:"id"`
	Position         int      `json:"position"`
	Medal            string   `json:"medal,omitempty"`
	PlayerName       string   `json:"player_name"`
	TelegramUsername string   `json:"telegram_username"`
	Score            int      `json:"score"`
	Actions          []Action `json:"actions,omitempty"`
}

type RatingView struct {
	Create *Action     `json:"create,omitempty"`
	Rows   []RatingRow `json:"rows"`
	Empty  string      `json:"empty,omitempty"`
}

type PlayerRow struct {
	ID               int      `json:"id"`
	FullName         string   `json:"full_name"`
	TelegramUsername string   `json:"telegram_username"`
	Rating           string   `json:"rating"`
	Actions          []Action `json:"actions"`
}

type PlayersView struct {
	Create *Action     `json:"create,omitempty"`
	Rows   []PlayerRow `json:"rows"`
	Empty  string      `json:"empty,omitempty"`
}

type MainView struct {
	Header   string   `json:"header"`
	UserInfo []string `json:"user_info"`
	Menu     []Action `json:"menu"`
}

// FormField - поле модальной формы.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Required bool   `json:"required,omitempty"`
}

type FormView struct {
	Kind   string      `json:"kind"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
	Save   Action      `json:"save"`
	Cancel Action      `json:"cancel"`
}

// Notice - результат мутирующего действия, показываемый пользователю.
type Notice struct {
	Message string `json:"message"`
}
