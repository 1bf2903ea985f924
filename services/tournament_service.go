package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/floppoker-console/lifecycle"
	"github.com/Dosada05/floppoker-console/models"
)

type TournamentService interface {
	List(ctx context.Context, st *AppState, status string) (models.TournamentListView, error)
	Detail(ctx context.Context, st *AppState, id int, withTables bool) (models.TournamentDetailView, error)
	CloseDetail(st *AppState, id int)
	Tables(ctx context.Context, st *AppState, id int) (models.TablesView, error)
	Register(ctx context.Context, st *AppState, id int) (models.Notice, error)
	Transition(ctx context.Context, st *AppState, id int, t lifecycle.Transition) (models.Notice, error)
	CreateTables(ctx context.Context, st *AppState, id int) (models.Notice, models.TablesView, error)
	UpdateChips(ctx context.Context, st *AppState, id, playerUserID int, raw string) (models.TournamentDetailView, error)
	Delete(ctx context.Context, st *AppState, id int) (models.Notice, error)
}

type tournamentService struct {
	backend Backend
	logger  *slog.Logger
}

func NewTournamentService(backend Backend, logger *slog.Logger) TournamentService {
	return &tournamentService{backend: backend, logger: logger}
}

const invalidChipsMessage = "Введите корректное количество фишек"

// ParseChips проверяет значение фишек до любого сетевого запроса.
// Допускаются целые числа >= 0.
func ParseChips(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, validationError("chips", invalidChipsMessage)
	}
	chips, err := strconv.Atoi(raw)
	if err != nil || chips < 0 {
		return 0, validationError("chips", invalidChipsMessage)
	}
	return chips, nil
}

func requireDirector(st *AppState) (models.User, error) {
	user := st.User()
	if !user.IsDirector() {
		return user, ErrForbiddenOperation
	}
	return user, nil
}

func (s *tournamentService) List(ctx context.Context, st *AppState, status string) (models.TournamentListView, error) {
	ticket := st.begin(ViewTournaments)
	user := st.User()
	viewer := lifecycle.ViewerOf(user)

	tournaments, err := s.backend.ListTournaments(ctx, status)
	if err != nil {
		return models.TournamentListView{}, fmt.Errorf("list tournaments: %w", err)
	}
	if !st.commit(ticket) {
		return models.TournamentListView{}, ErrViewSuperseded
	}

	view := models.TournamentListView{
		Title:  "🏆 Турниры",
		Filter: status,
		Cards:  make([]models.TournamentCard, 0, len(tournaments)),
	}
	if viewer.IsDirector() {
		view.Title = "🏆 Управление турнирами"
		view.Create = &models.Action{Kind: models.ActionCreate, Label: "+ Создать турнир", Target: string(EditingTournament)}
	}
	for _, t := range tournaments {
		view.Cards = append(view.Cards, lifecycle.RenderCard(t, viewer))
	}
	if len(view.Cards) == 0 {
		view.Empty = "Турниров нет"
	}
	return view, nil
}

// Detail загружает турнир (и при необходимости столы параллельно) и открывает детальный просмотр.
func (s *tournamentService) Detail(ctx context.Context, st *AppState, id int, withTables bool) (models.TournamentDetailView, error) {
	ticket := st.begin(ViewDetail)
	viewer := lifecycle.ViewerOf(st.User())

	var (
		tournament *models.Tournament
		tables     []models.Table
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.backend.GetTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("load tournament %d: %w", id, err)
		}
		tournament = t
		return nil
	})
	if withTables {
		g.Go(func() error {
			list, err := s.backend.Tables(gCtx, id)
			if err != nil {
				return fmt.Errorf("load tables of tournament %d: %w", id, err)
			}
			tables = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.TournamentDetailView{}, err
	}
	if !st.commit(ticket) {
		return models.TournamentDetailView{}, ErrViewSuperseded
	}

	view := lifecycle.RenderDetail(*tournament, viewer)
	if withTables {
		tv, err := renderTables(id, tables)
		if err != nil {
			return models.TournamentDetailView{}, err
		}
		view.Tables = &tv
	}
	st.setOpenTournament(id)
	return view, nil
}

func (s *tournamentService) CloseDetail(st *AppState, id int) {
	st.closeTournament(id)
}

func renderTables(id int, tables []models.Table) (models.TablesView, error) {
	view, err := lifecycle.RenderTables(id, tables)
	if err != nil {
		return models.TablesView{}, fmt.Errorf("%w: %v", ErrInvalidSeating, err)
	}
	return view, nil
}

func (s *tournamentService) Tables(ctx context.Context, st *AppState, id int) (models.TablesView, error) {
	ticket := st.begin(ViewTables)
	tables, err := s.backend.Tables(ctx, id)
	if err != nil {
		return models.TablesView{}, fmt.Errorf("load tables of tournament %d: %w", id, err)
	}
	if !st.commit(ticket) {
		return models.TablesView{}, ErrViewSuperseded
	}
	return renderTables(id, tables)
}

// Register регистрирует зрителя на открытый турнир.
func (s *tournamentService) Register(ctx context.Context, st *AppState, id int) (models.Notice, error) {
	if st.OpenTournament() != id {
		return models.Notice{}, ErrDetailNotOpen
	}
	user := st.User()
	res, err := s.backend.Register(ctx, user.ID, id)
	if err != nil {
		return models.Notice{}, fmt.Errorf("register user %d for tournament %d: %w", user.ID, id, err)
	}
	st.closeTournament(id)
	return models.Notice{Message: messageOr(res.Message, "Регистрация успешна")}, nil
}

// Transition запрашивает переход у бэкенда. Статус локально не меняется:
// детальный просмотр закрывается, список перечитывается браузером.
func (s *tournamentService) Transition(ctx context.Context, st *AppState, id int, t lifecycle.Transition) (models.Notice, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.Notice{}, err
	}
	res, err := s.backend.Transition(ctx, id, string(t), user.ID)
	if err != nil {
		return models.Notice{}, fmt.Errorf("%s tournament %d: %w", t, id, err)
	}
	st.closeTournament(id)
	s.logger.Info("tournament transition requested",
		slog.Int("tournament_id", id),
		slog.String("transition", string(t)),
		slog.Int("user_id", user.ID),
	)
	return models.Notice{Message: res.Message}, nil
}

// CreateTables рассаживает игроков и сразу возвращает столы.
func (s *tournamentService) CreateTables(ctx context.Context, st *AppState, id int) (models.Notice, models.TablesView, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.Notice{}, models.TablesView{}, err
	}
	res, err := s.backend.CreateTables(ctx, id, user.ID)
	if err != nil {
		return models.Notice{}, models.TablesView{}, fmt.Errorf("create tables for tournament %d: %w", id, err)
	}
	notice := models.Notice{Message: res.Message}
	tables, err := s.Tables(ctx, st, id)
	if err != nil {
		return notice, models.TablesView{}, err
	}
	return notice, tables, nil
}

// UpdateChips отправляет одно изменение фишек и перечитывает детальный просмотр.
func (s *tournamentService) UpdateChips(ctx context.Context, st *AppState, id, playerUserID int, raw string) (models.TournamentDetailView, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.TournamentDetailView{}, err
	}
	chips, err := ParseChips(raw)
	if err != nil {
		return models.TournamentDetailView{}, err
	}
	if _, err := s.backend.UpdateChips(ctx, id, user.ID, playerUserID, chips); err != nil {
		return models.TournamentDetailView{}, fmt.Errorf("update chips of player %d in tournament %d: %w", playerUserID, id, err)
	}
	return s.Detail(ctx, st, id, false)
}

func (s *tournamentService) Delete(ctx context.Context, st *AppState, id int) (models.Notice, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.Notice{}, err
	}
	if _, err := s.backend.DeleteTournament(ctx, id, user.ID); err != nil {
		return models.Notice{}, fmt.Errorf("delete tournament %d: %w", id, err)
	}
	st.closeTournament(id)
	return models.Notice{Message: "Турнир удалён"}, nil
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}

// IsValidation сообщает, что ошибка - отказ валидации до запроса.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
