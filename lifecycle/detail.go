package lifecycle

import (
	"fmt"

	"github.com/Dosada05/floppoker-console/models"
)

// RenderDetail строит детальный просмотр турнира для зрителя.
func RenderDetail(t models.Tournament, v Viewer) models.TournamentDetailView {
	return models.TournamentDetailView{
		ID:                t.ID,
		Name:              t.Name,
		Status:            Classify(t.Status),
		RentCost:          fmt.Sprintf("%d рублей", t.RentCost),
		StartingChips:     FormatNumber(t.RentChips),
		LevelTime:         fmt.Sprintf("%d минут", t.EffectiveLevelTime()),
		RegisteredPlayers: fmt.Sprintf("%d игроков", t.RegisteredPlayers),
		TotalChips:        FormatChips(t.TotalChips),
		StartTime:         t.StartTime.Human(),
		LateRegEndTime:    t.LateRegEndTime.Human(),
		Roster:            RenderRoster(t, v),
		Actions:           ComputeActions(t, v),
	}
}

// RenderCard строит карточку турнира для списка.
func RenderCard(t models.Tournament, v Viewer) models.TournamentCard {
	card := models.TournamentCard{
		ID:     t.ID,
		Name:   t.Name,
		Status: Classify(t.Status),
		Costs: []models.CostLine{
			{Label: "Аренда", Value: costLine(t.RentCost, t.RentChips)},
			{Label: "Повтор", Value: costLine(t.RebuyCost, t.RebuyChips)},
			{Label: "Аддон", Value: costLine(t.AddonCost, t.AddonChips)},
		},
		StartTime: t.StartTime.Human(),
		Open:      models.Action{Kind: models.ActionNavigate, Label: t.Name},
	}
	if v.IsDirector() {
		card.Actions = []models.Action{
			{Kind: models.ActionEdit, Label: "✏️ Редактировать"},
			{Kind: models.ActionDelete, Label: "🗑️ Удалить", Confirm: "Вы уверены, что хотите удалить турнир?"},
		}
	}
	return card
}

func costLine(cost, chips int) string {
	return fmt.Sprintf("%d руб / %d фишек", cost, chips)
}
