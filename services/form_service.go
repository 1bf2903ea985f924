package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dosada05/floppoker-console/models"
)

// TournamentForm - поля формы турнира в том виде, в каком их прислал браузер.
type TournamentForm struct {
	Name           models.FormValue `json:"name"`
	RentCost       models.FormValue `json:"rent_cost"`
	RentChips      models.FormValue `json:"rent_chips"`
	RebuyCost      models.FormValue `json:"rebuy_cost"`
	RebuyChips     models.FormValue `json:"rebuy_chips"`
	AddonCost      models.FormValue `json:"addon_cost"`
	AddonChips     models.FormValue `json:"addon_chips"`
	LevelTime      models.FormValue `json:"level_time"`
	StartTime      models.FormValue `json:"start_time"`
	LateRegEndTime models.FormValue `json:"late_reg_end_time"`
}

type RatingForm struct {
	PlayerName       models.FormValue `json:"player_name"`
	TelegramUsername models.FormValue `json:"telegram_username"`
	Score            models.FormValue `json:"score"`
}

type PlayerForm struct {
	TelegramUsername models.FormValue `json:"telegram_username"`
	FullName         models.FormValue `json:"full_name"`
}

// FormService управляет модальными формами. Создание или обновление
// определяется только открытой целью редактирования.
type FormService interface {
	OpenTournament(ctx context.Context, st *AppState, id int) (models.FormView, error)
	SaveTournament(ctx context.Context, st *AppState, form TournamentForm) (models.Notice, error)
	OpenRating(ctx context.Context, st *AppState, id int) (models.FormView, error)
	SaveRating(ctx context.Context, st *AppState, form RatingForm) (models.Notice, error)
	OpenPlayer(st *AppState) (models.FormView, error)
	SavePlayer(ctx context.Context, st *AppState, form PlayerForm) (models.Notice, error)
	Cancel(st *AppState)
}

type formService struct {
	backend Backend
}

func NewFormService(backend Backend) FormService {
	return &formService{backend: backend}
}

const tournamentRequiredMessage = "Заполните основные поля: название, аренда (стоимость и фишки), время начала и окончания регистрации"

func formActions(kind EditingKind) (save, cancel models.Action) {
	save = models.Action{Kind: models.ActionCreate, Label: "Сохранить", Target: string(kind)}
	cancel = models.Action{Kind: models.ActionClose, Label: "Отмена", Target: string(kind)}
	return save, cancel
}

func (s *formService) OpenTournament(ctx context.Context, st *AppState, id int) (models.FormView, error) {
	if _, err := requireDirector(st); err != nil {
		return models.FormView{}, err
	}

	t := models.Tournament{LevelTime: models.DefaultLevelTime}
	title := "Создать турнир"
	if id != 0 {
		loaded, err := s.backend.GetTournament(ctx, id)
		if err != nil {
			return models.FormView{}, fmt.Errorf("load tournament %d for editing: %w", id, err)
		}
		t = *loaded
		title = "Редактировать турнир"
	}
	st.beginEditing(EditingTournament, id)

	// Поля аренды при создании пустые, остальные числа по умолчанию 0.
	rentCost, rentChips := "", ""
	if id != 0 {
		rentCost, rentChips = strconv.Itoa(t.RentCost), strconv.Itoa(t.RentChips)
	}
	save, cancel := formActions(EditingTournament)
	return models.FormView{
		Kind:  string(EditingTournament),
		Title: title,
		Fields: []models.FormField{
			{Name: "name", Label: "Название", Type: "text", Value: t.Name, Required: true},
			{Name: "rent_cost", Label: "Аренда (руб)", Type: "number", Value: rentCost, Required: true},
			{Name: "rent_chips", Label: "Аренда (фишки)", Type: "number", Value: rentChips, Required: true},
			{Name: "rebuy_cost", Label: "Повтор (руб)", Type: "number", Value: strconv.Itoa(t.RebuyCost)},
			{Name: "rebuy_chips", Label: "Повтор (фишки)", Type: "number", Value: strconv.Itoa(t.RebuyChips)},
			{Name: "addon_cost", Label: "Аддон (руб)", Type: "number", Value: strconv.Itoa(t.AddonCost)},
			{Name: "addon_chips", Label: "Аддон (фишки)", Type: "number", Value: strconv.Itoa(t.AddonChips)},
			{Name: "level_time", Label: "Время уровней (мин)", Type: "number", Value: strconv.Itoa(t.EffectiveLevelTime())},
			{Name: "start_time", Label: "Время начала", Type: "datetime-local", Value: t.StartTime.FormValue(), Required: true},
			{Name: "late_reg_end_time", Label: "Окончание регистрации", Type: "datetime-local", Value: t.LateRegEndTime.FormValue(), Required: true},
		},
		Save:   save,
		Cancel: cancel,
	}, nil
}

func (s *formService) SaveTournament(ctx context.Context, st *AppState, form TournamentForm) (models.Notice, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.Notice{}, err
	}
	target := st.Editing()
	if target.Kind != EditingTournament {
		return models.Notice{}, ErrNoEditingTarget
	}

	input, err := tournamentInput(user.ID, form)
	if err != nil {
		return models.Notice{}, err
	}

	if target.IsCreate() {
		if _, err := s.backend.CreateTournament(ctx, input); err != nil {
			return models.Notice{}, fmt.Errorf("create tournament: %w", err)
		}
		st.finishEditing(target)
		return models.Notice{Message: "Турнир создан"}, nil
	}
	if _, err := s.backend.UpdateTournament(ctx, target.ID, input); err != nil {
		return models.Notice{}, fmt.Errorf("update tournament %d: %w", target.ID, err)
	}
	st.finishEditing(target)
	return models.Notice{Message: "Турнир обновлён"}, nil
}

func tournamentInput(userID int, form TournamentForm) (models.TournamentInput, error) {
	name := strings.TrimSpace(form.Name.String())
	start := strings.TrimSpace(form.StartTime.String())
	lateReg := strings.TrimSpace(form.LateRegEndTime.String())
	if name == "" || strings.TrimSpace(form.RentCost.String()) == "" ||
		strings.TrimSpace(form.RentChips.String()) == "" || start == "" || lateReg == "" {
		return models.TournamentInput{}, validationError("", tournamentRequiredMessage)
	}

	rentCost, err := requiredInt("rent_cost", form.RentCost)
	if err != nil {
		return models.TournamentInput{}, err
	}
	rentChips, err := requiredInt("rent_chips", form.RentChips)
	if err != nil {
		return models.TournamentInput{}, err
	}
	if _, err := models.ParseTimestamp(start); err != nil {
		return models.TournamentInput{}, validationError("start_time", "Некорректная дата")
	}
	if _, err := models.ParseTimestamp(lateReg); err != nil {
		return models.TournamentInput{}, validationError("late_reg_end_time", "Некорректная дата")
	}

	return models.TournamentInput{
		UserID:         userID,
		Name:           name,
		RentCost:       rentCost,
		RentChips:      rentChips,
		RebuyCost:      optionalInt(form.RebuyCost, 0),
		RebuyChips:     optionalInt(form.RebuyChips, 0),
		AddonCost:      optionalInt(form.AddonCost, 0),
		AddonChips:     optionalInt(form.AddonChips, 0),
		LevelTime:      optionalInt(form.LevelTime, models.DefaultLevelTime),
		StartTime:      start,
		LateRegEndTime: lateReg,
	}, nil
}

func requiredInt(field string, v models.FormValue) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.String()))
	if err != nil || n < 0 {
		return 0, validationError(field, "Введите неотрицательное целое число")
	}
	return n, nil
}

// optionalInt повторяет поведение формы: пустое, нечисловое или нулевое значение
// заменяется значением по умолчанию.
func optionalInt(v models.FormValue, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v.String()))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (s *formService) OpenRating(ctx context.Context, st *AppState, id int) (models.FormView, error) {
	if _, err := requireDirector(st); err != nil {
		return models.FormView{}, err
	}

	entry := models.RatingEntry{Score: models.DefaultRatingScore}
	title := "Добавить в рейтинг"
	if id != 0 {
		// Отдельного эндпоинта записи нет: ищем в общем списке.
		entries, err := s.backend.Rating(ctx)
		if err != nil {
			return models.FormView{}, fmt.Errorf("load rating for editing: %w", err)
		}
		found := false
		for _, e := range entries {
			if e.ID == id {
				entry, found = e, true
				break
			}
		}
		if !found {
			return models.FormView{}, ErrRatingNotFound
		}
		title = "Редактировать рейтинг"
	}
	st.beginEditing(EditingRating, id)

	save, cancel := formActions(EditingRating)
	return models.FormView{
		Kind:  string(EditingRating),
		Title: title,
		Fields: []models.FormField{
			{Name: "player_name", Label: "Имя игрока", Type: "text", Value: entry.PlayerName, Required: true},
			{Name: "telegram_username", Label: "Telegram username", Type: "text", Value: entry.TelegramUsername, Required: true},
			{Name: "score", Label: "Очки", Type: "number", Value: strconv.Itoa(entry.Score)},
		},
		Save:   save,
		Cancel: cancel,
	}, nil
}

func (s *formService) SaveRating(ctx context.Context, st *AppState, form RatingForm) (models.Notice, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.Notice{}, err
	}
	target := st.Editing()
	if target.Kind != EditingRating {
		return models.Notice{}, ErrNoEditingTarget
	}

	name := strings.TrimSpace(form.PlayerName.String())
	handle := strings.TrimSpace(form.TelegramUsername.String())
	if name == "" || handle == "" {
		return models.Notice{}, validationError("", "Имя игрока и Telegram username обязательны")
	}
	input := models.RatingInput{
		UserID:           user.ID,
		PlayerName:       name,
		TelegramUsername: strings.ReplaceAll(handle, "@", ""),
		Score:            optionalInt(form.Score, models.DefaultRatingScore),
	}

	if target.IsCreate() {
		if _, err := s.backend.CreateRating(ctx, input); err != nil {
			return models.Notice{}, fmt.Errorf("create rating entry: %w", err)
		}
		st.finishEditing(target)
		return models.Notice{Message: "Игрок добавлен в рейтинг"}, nil
	}
	if _, err := s.backend.UpdateRating(ctx, target.ID, input); err != nil {
		return models.Notice{}, fmt.Errorf("update rating entry %d: %w", target.ID, err)
	}
	st.finishEditing(target)
	return models.Notice{Message: "Рейтинг обновлён"}, nil
}

func (s *formService) OpenPlayer(st *AppState) (models.FormView, error) {
	if _, err := requireDirector(st); err != nil {
		return models.FormView{}, err
	}
	st.beginEditing(EditingPlayer, 0)

	save, cancel := formActions(EditingPlayer)
	return models.FormView{
		Kind:  string(EditingPlayer),
		Title: "Добавить игрока",
		Fields: []models.FormField{
			{Name: "telegram_username", Label: "Telegram username", Type: "text", Required: true},
			{Name: "full_name", Label: "Имя", Type: "text", Required: true},
		},
		Save:   save,
		Cancel: cancel,
	}, nil
}

func (s *formService) SavePlayer(ctx context.Context, st *AppState, form PlayerForm) (models.Notice, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.Notice{}, err
	}
	target := st.Editing()
	if target.Kind != EditingPlayer {
		return models.Notice{}, ErrNoEditingTarget
	}

	handle := strings.TrimSpace(form.TelegramUsername.String())
	name := strings.TrimSpace(form.FullName.String())
	if handle == "" || name == "" {
		return models.Notice{}, validationError("", "Telegram username и полное имя обязательны")
	}
	res, err := s.backend.CreatePlayer(ctx, models.PlayerInput{
		UserID:           user.ID,
		TelegramUsername: strings.TrimPrefix(handle, "@"),
		FullName:         name,
	})
	if err != nil {
		return models.Notice{}, fmt.Errorf("create player: %w", err)
	}
	st.finishEditing(target)
	return models.Notice{Message: messageOr(res.Message, "Игрок создан")}, nil
}

func (s *formService) Cancel(st *AppState) {
	st.clearEditing()
}
