package handlers

import (
	"net/http"

	"github.com/Dosada05/floppoker-console/services"
)

type PlayerHandler struct {
	players services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{players: ps}
}

// List godoc
// @Summary Список игроков (директор)
// @Tags players
// @Produce json
// @Success 200 {object} models.PlayersView
// @Failure 403 {object} map[string]string "Только директор"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/players [get]
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	view, err := h.players.List(r.Context(), st)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка загрузки игроков")
		return
	}
	bindPlayers(&view)
	respond(w, r, http.StatusOK, view)
}

// Delete godoc
// @Summary Удалить игрока
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Notice
// @Failure 403 {object} map[string]string "Только директор"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Security SessionCookie
// @Router /console/players/{id} [delete]
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	notice, err := h.players.Delete(r.Context(), st, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Ошибка удаления игрока")
		return
	}
	respond(w, r, http.StatusOK, notice)
}
