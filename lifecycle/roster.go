package lifecycle

import (
	"sort"

	"github.com/Dosada05/floppoker-console/models"
)

// SortRoster возвращает копию списка игроков. Во время игры список упорядочен
// по убыванию фишек (при равенстве сохраняется исходный порядок), иначе -
// в порядке, присланном бэкендом.
func SortRoster(players []models.Registration, status models.TournamentStatus) []models.Registration {
	out := make([]models.Registration, len(players))
	copy(out, players)
	if IsLive(status) {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Chips > out[j].Chips
		})
	}
	return out
}

// ChipsEditable - редактирование фишек показывается только директору во время игры.
func ChipsEditable(status models.TournamentStatus, role models.UserRole) bool {
	return role == models.RoleDirector && IsLive(status)
}

const (
	rosterTitle       = "🎮 Зарегистрированные игроки"
	rosterSortedTitle = rosterTitle + " (сортировка по фишкам)"
	rosterEmpty       = "Нет зарегистрированных игроков"
)

// RenderRoster строит ростер детального просмотра.
func RenderRoster(t models.Tournament, v Viewer) models.Roster {
	live := IsLive(t.Status)
	editable := ChipsEditable(t.Status, v.Role)

	roster := models.Roster{
		Title:         rosterTitle,
		SortedByChips: live,
		Rows:          []models.RosterRow{},
	}
	if live {
		roster.Title = rosterSortedTitle
	}

	for _, p := range SortRoster(t.Players, t.Status) {
		row := models.RosterRow{
			UserID:        p.UserID,
			Nickname:      p.GameNickname,
			Rating:        p.Rating,
			Chips:         p.Chips,
			ChipsDisplay:  FormatChips(p.Chips),
			Rebuys:        p.Rebuys,
			Addons:        p.Addons,
			IsViewer:      p.UserID == v.UserID,
			ChipsEditable: editable,
		}
		if editable {
			row.ChipsAction = &models.Action{Kind: models.ActionUpdateChips, Label: "Фишки"}
		}
		roster.Rows = append(roster.Rows, row)
	}

	if len(roster.Rows) == 0 {
		roster.Empty = rosterEmpty
	}
	return roster
}
