package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/floppoker-console/services"
)

type FormHandler struct {
	forms services.FormService
}

func NewFormHandler(fs services.FormService) *FormHandler {
	return &FormHandler{forms: fs}
}

// optionalID: путь без {id} открывает форму создания.
func optionalID(r *http.Request) (int, error) {
	if chi.URLParam(r, "id") == "" {
		return 0, nil
	}
	return getIDFromURL(r, "id")
}

// OpenTournament godoc
// @Summary Открыть форму турнира
// @Tags forms
// @Produce json
// @Param id path int false "Tournament ID (редактирование)"
// @Success 200 {object} models.FormView
// @Failure 403 {object} map[string]string "Только директор"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/forms/tournament [post]
// @Router /console/forms/tournament/{id} [post]
func (h *FormHandler) OpenTournament(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := optionalID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	form, err := h.forms.OpenTournament(r.Context(), st, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка загрузки турнира")
		return
	}
	bindForm(&form)
	respond(w, r, http.StatusOK, form)
}

// SaveTournament godoc
// @Summary Сохранить форму турнира
// @Tags forms
// @Accept json
// @Produce json
// @Param body body services.TournamentForm true "Поля формы"
// @Success 200 {object} models.Notice
// @Failure 409 {object} map[string]string "Форма не открыта"
// @Failure 422 {object} map[string]string "Не заполнены обязательные поля"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/forms/tournament/save [post]
func (h *FormHandler) SaveTournament(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	var input services.TournamentForm
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	notice, err := h.forms.SaveTournament(r.Context(), st, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка сохранения турнира")
		return
	}
	respond(w, r, http.StatusOK, notice)
}

// OpenRating godoc
// @Summary Открыть форму рейтинга
// @Tags forms
// @Produce json
// @Param id path int false "Rating entry ID (редактирование)"
// @Success 200 {object} models.FormView
// @Failure 404 {object} map[string]string "Рейтинг не найден"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/forms/rating [post]
// @Router /console/forms/rating/{id} [post]
func (h *FormHandler) OpenRating(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := optionalID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	form, err := h.forms.OpenRating(r.Context(), st, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка загрузки рейтинга")
		return
	}
	bindForm(&form)
	respond(w, r, http.StatusOK, form)
}

// SaveRating godoc
// @Summary Сохранить форму рейтинга
// @Tags forms
// @Accept json
// @Produce json
// @Param body body services.RatingForm true "Поля формы"
// @Success 200 {object} models.Notice
// @Failure 409 {object} map[string]string "Форма не открыта"
// @Failure 422 {object} map[string]string "Не заполнены обязательные поля"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/forms/rating/save [post]
func (h *FormHandler) SaveRating(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	var input services.RatingForm
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	notice, err := h.forms.SaveRating(r.Context(), st, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка сохранения рейтинга")
		return
	}
	respond(w, r, http.StatusOK, notice)
}

// OpenPlayer godoc
// @Summary Открыть форму нового игрока
// @Tags forms
// @Produce json
// @Success 200 {object} models.FormView
// @Failure 403 {object} map[string]string "Только директор"
// @Security SessionCookie
// @Router /console/forms/player [post]
func (h *FormHandler) OpenPlayer(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	form, err := h.forms.OpenPlayer(st)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, connectionNotice)
		return
	}
	bindForm(&form)
	respond(w, r, http.StatusOK, form)
}

// SavePlayer godoc
// @Summary Создать игрока
// @Tags forms
// @Accept json
// @Produce json
// @Param body body services.PlayerForm true "Поля формы"
// @Success 200 {object} models.Notice
// @Failure 409 {object} map[string]string "Форма не открыта"
// @Failure 422 {object} map[string]string "Не заполнены обязательные поля"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/forms/player/save [post]
func (h *FormHandler) SavePlayer(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	var input services.PlayerForm
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	notice, err := h.forms.SavePlayer(r.Context(), st, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка создания игрока")
		return
	}
	respond(w, r, http.StatusOK, notice)
}

// Cancel godoc
// @Summary Закрыть открытую форму
// @Tags forms
// @Success 204
// @Security SessionCookie
// @Router /console/forms [delete]
func (h *FormHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	h.forms.Cancel(st)
	w.WriteHeader(http.StatusNoContent)
}
