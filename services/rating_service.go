package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/floppoker-console/models"
)

type RatingService interface {
	List(ctx context.Context, st *AppState) (models.RatingView, error)
	Delete(ctx context.Context, st *AppState, id int) (models.Notice, error)
}

type ratingService struct {
	backend Backend
}

func NewRatingService(backend Backend) RatingService {
	return &ratingService{backend: backend}
}

var medals = [...]string{"🥇", "🥈", "🥉"}

func (s *ratingService) List(ctx context.Context, st *AppState) (models.RatingView, error) {
	ticket := st.begin(ViewRating)
	user := st.User()

	entries, err := s.backend.Rating(ctx)
	if err != nil {
		return models.RatingView{}, fmt.Errorf("load rating: %w", err)
	}
	if !st.commit(ticket) {
		return models.RatingView{}, ErrViewSuperseded
	}

	view := models.RatingView{Rows: make([]models.RatingRow, 0, len(entries))}
	if user.IsDirector() {
		view.Create = &models.Action{Kind: models.ActionCreate, Label: "+ Добавить игрока в рейтинг", Target: string(EditingRating)}
	}
	// Порядок задаёт бэкенд (по убыванию очков), позиция - индекс в списке.
	for i, e := range entries {
		row := models.RatingRow{
			ID:               e.ID,
			Position:         i + 1,
			PlayerName:       e.PlayerName,
			TelegramUsername: "@" + e.TelegramUsername,
			Score:            e.Score,
		}
		if i < len(medals) {
			row.Medal = medals[i]
		}
		if user.IsDirector() {
			row.Actions = []models.Action{
				{Kind: models.ActionEdit, Label: "✏️"},
				{Kind: models.ActionDelete, Label: "🗑️", Confirm: "Вы уверены, что хотите удалить игрока из рейтинга?"},
			}
		}
		view.Rows = append(view.Rows, row)
	}
	if len(view.Rows) == 0 {
		view.Empty = "Рейтинг пуст"
	}
	return view, nil
}

func (s *ratingService) Delete(ctx context.Context, st *AppState, id int) (models.Notice, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.Notice{}, err
	}
	if _, err := s.backend.DeleteRating(ctx, id, user.ID); err != nil {
		return models.Notice{}, fmt.Errorf("delete rating entry %d: %w", id, err)
	}
	return models.Notice{Message: "Игрок удалён из рейтинга"}, nil
}
