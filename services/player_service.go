package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/floppoker-console/models"
)

// PlayerService - административный список игроков. Только для директора.
type PlayerService interface {
	List(ctx context.Context, st *AppState) (models.PlayersView, error)
	Delete(ctx context.Context, st *AppState, id int) (models.Notice, error)
}

type playerService struct {
	backend Backend
}

func NewPlayerService(backend Backend) PlayerService {
	return &playerService{backend: backend}
}

func (s *playerService) List(ctx context.Context, st *AppState) (models.PlayersView, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.PlayersView{}, err
	}
	ticket := st.begin(ViewPlayers)

	players, err := s.backend.Players(ctx, user.ID)
	if err != nil {
		return models.PlayersView{}, fmt.Errorf("load players: %w", err)
	}
	if !st.commit(ticket) {
		return models.PlayersView{}, ErrViewSuperseded
	}

	view := models.PlayersView{
		Create: &models.Action{Kind: models.ActionCreate, Label: "+ Добавить игрока", Target: string(EditingPlayer)},
		Rows:   make([]models.PlayerRow, 0, len(players)),
	}
	for _, p := range players {
		view.Rows = append(view.Rows, models.PlayerRow{
			ID:               p.ID,
			FullName:         p.FullName,
			TelegramUsername: "@" + p.TelegramUsername,
			Rating:           fmt.Sprintf("Рейтинг: %d", p.RatingScore),
			Actions: []models.Action{
				{Kind: models.ActionDelete, Label: "🗑️ Удалить", Confirm: "Вы уверены, что хотите удалить игрока?"},
			},
		})
	}
	if len(view.Rows) == 0 {
		view.Empty = "Игроков нет"
	}
	return view, nil
}

func (s *playerService) Delete(ctx context.Context, st *AppState, id int) (models.Notice, error) {
	user, err := requireDirector(st)
	if err != nil {
		return models.Notice{}, err
	}
	if _, err := s.backend.DeletePlayer(ctx, id, user.ID); err != nil {
		return models.Notice{}, fmt.Errorf("delete player %d: %w", id, err)
	}
	return models.Notice{Message: "Игрок удалён"}, nil
}
