package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/floppoker-console/models"
)

// Цели навигации главного меню.
const (
	PageTournaments = "tournaments"
	PagePlayers     = "players"
	PageRating      = "rating"
)

type SessionService interface {
	LoginDirector(ctx context.Context, creds models.DirectorCredentials) (*AppState, error)
	LoginPlayer(ctx context.Context, creds models.TelegramCredentials) (*AppState, error)
	Logout(st *AppState)
	MainView(st *AppState) models.MainView
}

type sessionService struct {
	backend Backend
	store   *SessionStore
	logger  *slog.Logger
}

func NewSessionService(backend Backend, store *SessionStore, logger *slog.Logger) SessionService {
	return &sessionService{backend: backend, store: store, logger: logger}
}

func (s *sessionService) LoginDirector(ctx context.Context, creds models.DirectorCredentials) (*AppState, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return nil, validationError("username", "Введите логин и пароль")
	}
	user, err := s.backend.LoginDirector(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("director login: %w", err)
	}
	return s.open(ctx, *user), nil
}

func (s *sessionService) LoginPlayer(ctx context.Context, creds models.TelegramCredentials) (*AppState, error) {
	creds.TelegramUsername = strings.TrimSpace(creds.TelegramUsername)
	if creds.TelegramUsername == "" {
		return nil, validationError("telegram_username", "Введите Telegram username")
	}
	user, err := s.backend.LoginTelegram(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", err)
	}
	return s.open(ctx, *user), nil
}

func (s *sessionService) open(ctx context.Context, user models.User) *AppState {
	st := s.store.Create(user)
	s.loadProfile(ctx, st)
	s.logger.Info("session opened",
		slog.String("session_id", st.ID()),
		slog.Int("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return st
}

// loadProfile не блокирует вход: при ошибке рейтинг считается неизвестным.
func (s *sessionService) loadProfile(ctx context.Context, st *AppState) {
	user := st.User()
	profile, err := s.backend.Profile(ctx, user.ID)
	if err != nil {
		s.logger.Warn("profile load failed, rating unknown",
			slog.Int("user_id", user.ID),
			slog.Any("error", err),
		)
		return
	}
	st.setProfile(profile)
}

func (s *sessionService) Logout(st *AppState) {
	user := st.User()
	s.store.Delete(st.ID())
	s.logger.Info("session closed", slog.String("session_id", st.ID()), slog.Int("user_id", user.ID))
}

func (s *sessionService) MainView(st *AppState) models.MainView {
	return MainViewFor(st.User())
}

// MainViewFor строит главное меню. Набор пунктов зависит только от роли.
func MainViewFor(user models.User) models.MainView {
	logout := models.Action{Kind: models.ActionLogout, Label: "🚪 Выйти"}

	if user.IsDirector() {
		return models.MainView{
			Header:   "👑 Панель директора",
			UserInfo: []string{"👤 " + user.FullName, "🔑 " + user.Username},
			Menu: []models.Action{
				{Kind: models.ActionNavigate, Label: "🏆 Управление турнирами", Target: PageTournaments},
				{Kind: models.ActionNavigate, Label: "👥 Управление игроками", Target: PagePlayers},
				{Kind: models.ActionNavigate, Label: "📊 Рейтинг игроков", Target: PageRating},
				logout,
			},
		}
	}

	return models.MainView{
		Header:   "🎮 Панель игрока",
		UserInfo: []string{"👤 " + user.FullName, "📱 " + user.TelegramUsername, ratingLine(user.Profile)},
		Menu: []models.Action{
			{Kind: models.ActionNavigate, Label: "🏆 Турниры", Target: PageTournaments},
			{Kind: models.ActionNavigate, Label: "📊 Рейтинг игроков", Target: PageRating},
			logout,
		},
	}
}

func ratingLine(p *models.Profile) string {
	if p == nil || p.Rating == nil {
		return "Рейтинг не определён"
	}
	line := fmt.Sprintf("🏅 Рейтинг: %d", p.Rating.Score)
	if p.Rating.Position != nil {
		line += fmt.Sprintf(" (Место: %d)", *p.Rating.Position)
	}
	return line
}
