package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dosada05/floppoker-console/lifecycle"
	"github.com/Dosada05/floppoker-console/models"
	"github.com/Dosada05/floppoker-console/services"
)

type TournamentHandler struct {
	tournaments services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournaments: ts}
}

// Сообщения при недоступности бэкенда.
var transitionNotices = map[lifecycle.Transition]string{
	lifecycle.TransitionStart:        "Ошибка запуска турнира",
	lifecycle.TransitionCloseLateReg: "Ошибка закрытия регистрации",
	lifecycle.TransitionComplete:     "Ошибка завершения турнира",
}

// List godoc
// @Summary Список турниров
// @Tags tournaments
// @Produce json
// @Param status query string false "Фильтр по статусу (registration, late_registration, active, active_no_late_reg, completed)"
// @Success 200 {object} models.TournamentListView
// @Failure 400 {object} map[string]string "Неизвестный статус"
// @Failure 409 {object} map[string]string "Ответ устарел"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/tournaments [get]
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" {
		if _, known := lifecycle.ParseStatus(status); !known {
			badRequestResponse(w, r, errors.New("invalid status query parameter"))
			return
		}
	}

	view, err := h.tournaments.List(r.Context(), st, status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка загрузки турниров")
		return
	}
	bindList(&view)
	respond(w, r, http.StatusOK, view)
}

// Detail godoc
// @Summary Детальный просмотр турнира
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Param tables query bool false "Сразу загрузить рассадку"
// @Success 200 {object} models.TournamentDetailView
// @Failure 400 {object} map[string]string "Турнир не найден на бэкенде"
// @Failure 409 {object} map[string]string "Ответ устарел"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/tournaments/{id} [get]
func (h *TournamentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	withTables := false
	if raw := r.URL.Query().Get("tables"); raw != "" {
		withTables, err = strconv.ParseBool(raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("invalid tables query parameter"))
			return
		}
	}

	view, err := h.tournaments.Detail(r.Context(), st, id, withTables)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка загрузки информации о турнире")
		return
	}
	bindDetail(&view)
	respond(w, r, http.StatusOK, view)
}

// CloseDetail godoc
// @Summary Закрыть детальный просмотр
// @Tags tournaments
// @Param id path int true "Tournament ID"
// @Success 204
// @Security SessionCookie
// @Router /console/tournaments/{id}/detail [delete]
func (h *TournamentHandler) CloseDetail(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.tournaments.CloseDetail(st, id)
	w.WriteHeader(http.StatusNoContent)
}

// Register godoc
// @Summary Зарегистрироваться на открытый турнир
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.Notice
// @Failure 400 {object} map[string]string "Бэкенд отклонил регистрацию"
// @Failure 409 {object} map[string]string "Турнир не открыт"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/tournaments/{id}/register [post]
func (h *TournamentHandler) Register(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	notice, err := h.tournaments.Register(r.Context(), st, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка регистрации")
		return
	}
	respond(w, r, http.StatusOK, notice)
}

// Tables godoc
// @Summary Рассадка турнира
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.TablesView
// @Failure 409 {object} map[string]string "Ответ устарел"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/tournaments/{id}/tables [get]
func (h *TournamentHandler) Tables(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.tournaments.Tables(r.Context(), st, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка загрузки столов")
		return
	}
	respond(w, r, http.StatusOK, view)
}

// Transition возвращает обработчик перехода жизненного цикла.
// @Summary Переход жизненного цикла (start, close-late-reg, complete)
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.Notice
// @Failure 400 {object} map[string]string "Бэкенд отклонил переход"
// @Failure 403 {object} map[string]string "Только директор"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/tournaments/{id}/start [post]
// @Router /console/tournaments/{id}/close-late-reg [post]
// @Router /console/tournaments/{id}/complete [post]
func (h *TournamentHandler) Transition(t lifecycle.Transition) http.HandlerFunc {
	notice := transitionNotices[t]
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := sessionState(w, r)
		if !ok {
			return
		}
		id, err := getIDFromURL(r, "id")
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}

		res, err := h.tournaments.Transition(r.Context(), st, id, t)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err, notice)
			return
		}
		respond(w, r, http.StatusOK, res)
	}
}

// CreateTables godoc
// @Summary Рассадить игроков по столам
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Сообщение и рассадка"
// @Failure 403 {object} map[string]string "Только директор"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/tournaments/{id}/create-tables [post]
func (h *TournamentHandler) CreateTables(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	notice, tables, err := h.tournaments.CreateTables(r.Context(), st, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка создания столов")
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"message": notice.Message, "tables": tables})
}

type updateChipsInput struct {
	PlayerUserID int              `json:"player_user_id"`
	Chips        models.FormValue `json:"chips"`
}

// UpdateChips godoc
// @Summary Изменить фишки игрока
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param body body updateChipsInput true "Игрок и новое количество фишек"
// @Success 200 {object} models.TournamentDetailView
// @Failure 403 {object} map[string]string "Только директор"
// @Failure 422 {object} map[string]string "Некорректное количество фишек"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/tournaments/{id}/chips [post]
func (h *TournamentHandler) UpdateChips(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input updateChipsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.PlayerUserID <= 0 {
		badRequestResponse(w, r, errors.New("player_user_id is required"))
		return
	}

	view, err := h.tournaments.UpdateChips(r.Context(), st, id, input.PlayerUserID, input.Chips.String())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка обновления фишек")
		return
	}
	bindDetail(&view)
	respond(w, r, http.StatusOK, view)
}

// Delete godoc
// @Summary Удалить турнир
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.Notice
// @Failure 403 {object} map[string]string "Только директор"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/tournaments/{id} [delete]
func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	notice, err := h.tournaments.Delete(r.Context(), st, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка удаления турнира")
		return
	}
	respond(w, r, http.StatusOK, notice)
}
