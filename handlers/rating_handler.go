package handlers

import (
	"net/http"

	"github.com/Dosada05/floppoker-console/services"
)

type RatingHandler struct {
	rating services.RatingService
}

func NewRatingHandler(rs services.RatingService) *RatingHandler {
	return &RatingHandler{rating: rs}
}

// List godoc
// @Summary Рейтинг игроков
// @Tags rating
// @Produce json
// @Success 200 {object} models.RatingView
// @Failure 409 {object} map[string]string "Ответ устарел"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/rating [get]
func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	view, err := h.rating.List(r.Context(), st)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка загрузки рейтинга")
		return
	}
	bindRating(&view)
	respond(w, r, http.StatusOK, view)
}

// Delete godoc
// @Summary Удалить запись рейтинга
// @Tags rating
// @Produce json
// @Param id path int true "Rating entry ID"
// @Success 200 {object} models.Notice
// @Failure 403 {object} map[string]string "Только директор"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/rating/{id} [delete]
func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	notice, err := h.rating.Delete(r.Context(), st, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка удаления рейтинга")
		return
	}
	respond(w, r, http.StatusOK, notice)
}
