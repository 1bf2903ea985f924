package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dosada05/floppoker-console/middleware"
	"github.com/Dosada05/floppoker-console/models"
	"github.com/Dosada05/floppoker-console/services"
)

const connectionNotice = "Ошибка соединения с сервером"

type AuthHandler struct {
	sessions services.SessionService
	auth     *middleware.Authenticator
	ttl      time.Duration
}

func NewAuthHandler(sessions services.SessionService, auth *middleware.Authenticator, ttl time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sessions, auth: auth, ttl: ttl}
}

// LoginDirector godoc
// @Summary Вход директора
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.DirectorCredentials true "Логин и пароль"
// @Success 200 {object} map[string]interface{} "Токен и главное меню"
// @Failure 400 {object} map[string]string "Бэкенд отклонил вход"
// @Failure 409 {object} map[string]string "Уже выполнен вход"
// @Failure 422 {object} map[string]string "Пустые поля"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Router /console/auth/director [post]
func (h *AuthHandler) LoginDirector(w http.ResponseWriter, r *http.Request) {
	if h.hasLiveSession(r) {
		mapServiceErrorToHTTP(w, r, services.ErrSessionActive, connectionNotice)
		return
	}

	var input models.DirectorCredentials
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	st, err := h.sessions.LoginDirector(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, connectionNotice)
		return
	}
	h.startSession(w, r, st)
}

// LoginPlayer godoc
// @Summary Вход игрока по Telegram username
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.TelegramCredentials true "Telegram username"
// @Success 200 {object} map[string]interface{} "Токен и главное меню"
// @Failure 400 {object} map[string]string "Бэкенд отклонил вход"
// @Failure 409 {object} map[string]string "Уже выполнен вход"
// @Failure 422 {object} map[string]string "Пустое поле"
// @Failure 502 {object} map[string]string "Бэкенд недоступен"
// @Router /console/auth/player [post]
func (h *AuthHandler) LoginPlayer(w http.ResponseWriter, r *http.Request) {
	if h.hasLiveSession(r) {
		mapServiceErrorToHTTP(w, r, services.ErrSessionActive, connectionNotice)
		return
	}

	var input models.TelegramCredentials
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	st, err := h.sessions.LoginPlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, connectionNotice)
		return
	}
	h.startSession(w, r, st)
}

func (h *AuthHandler) hasLiveSession(r *http.Request) bool {
	_, err := h.auth.Lookup(r)
	return err == nil
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, st *services.AppState) {
	user := st.User()
	now := time.Now()
	token, err := middleware.IssueToken(h.auth.Secret(), middleware.SessionClaims{
		SessionID: st.ID(),
		UserID:    user.ID,
		Role:      user.Role,
	}, h.ttl, now)
	if err != nil {
		h.sessions.Logout(st)
		serverErrorResponse(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(h.ttl),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	view := h.sessions.MainView(st)
	bindMain(&view)
	respond(w, r, http.StatusOK, jsonResponse{"token": token, "view": view})
}

// Logout godoc
// @Summary Выход
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Сессия закрыта"
// @Failure 401 {object} map[string]string "Нет сессии"
// @Router /console/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	h.sessions.Logout(st)

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respond(w, r, http.StatusOK, jsonResponse{"view": "auth"})
}

// Session godoc
// @Summary Главное меню текущей сессии
// @Tags auth
// @Produce json
// @Success 200 {object} models.MainView
// @Failure 401 {object} map[string]string "Нет сессии"
// @Security SessionCookie
// @Router /console/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionState(w, r)
	if !ok {
		return
	}
	view := h.sessions.MainView(st)
	bindMain(&view)
	respond(w, r, http.StatusOK, view)
}

// sessionState достаёт состояние, положенное Authenticate.
func sessionState(w http.ResponseWriter, r *http.Request) (*services.AppState, bool) {
	st, err := middleware.StateFromContext(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, errors.Join(services.ErrSessionRequired, err), connectionNotice)
		return nil, false
	}
	return st, true
}
