package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dosada05/floppoker-console/models"
	"github.com/Dosada05/floppoker-console/services"
)

// Привязка действий к эндпоинтам консоли. Сервисы описывают кнопки,
// здесь им назначаются метод и путь.

const consolePrefix = "/console"

func tournamentPath(id int, suffix string) string {
	return fmt.Sprintf("%s/tournaments/%d%s", consolePrefix, id, suffix)
}

func bind(a *models.Action, method, href string) {
	a.Method = method
	a.Href = href
}

var detailRoutes = map[models.ActionKind]struct {
	method string
	suffix string
}{
	models.ActionRegister:     {http.MethodPost, "/register"},
	models.ActionShowTables:   {http.MethodGet, "/tables"},
	models.ActionStart:        {http.MethodPost, "/start"},
	models.ActionCloseLateReg: {http.MethodPost, "/close-late-reg"},
	models.ActionComplete:     {http.MethodPost, "/complete"},
	models.ActionCreateTables: {http.MethodPost, "/create-tables"},
	models.ActionClose:        {http.MethodDelete, "/detail"},
	models.ActionUpdateChips:  {http.MethodPost, "/chips"},
}

func bindDetail(v *models.TournamentDetailView) {
	for i := range v.Actions {
		if route, ok := detailRoutes[v.Actions[i].Kind]; ok {
			bind(&v.Actions[i], route.method, tournamentPath(v.ID, route.suffix))
		}
	}
	for i := range v.Roster.Rows {
		row := &v.Roster.Rows[i]
		if row.ChipsAction != nil {
			row.ChipsAction.Target = fmt.Sprint(row.UserID)
			bind(row.ChipsAction, http.MethodPost, tournamentPath(v.ID, "/chips"))
		}
	}
}

func bindList(v *models.TournamentListView) {
	if v.Create != nil {
		bind(v.Create, http.MethodPost, consolePrefix+"/forms/tournament")
	}
	for i := range v.Cards {
		card := &v.Cards[i]
		bind(&card.Open, http.MethodGet, tournamentPath(card.ID, ""))
		for j := range card.Actions {
			switch card.Actions[j].Kind {
			case models.ActionEdit:
				bind(&card.Actions[j], http.MethodPost, fmt.Sprintf("%s/forms/tournament/%d", consolePrefix, card.ID))
			case models.ActionDelete:
				bind(&card.Actions[j], http.MethodDelete, tournamentPath(card.ID, ""))
			}
		}
	}
}

func bindRating(v *models.RatingView) {
	if v.Create != nil {
		bind(v.Create, http.MethodPost, consolePrefix+"/forms/rating")
	}
	for i := range v.Rows {
		row := &v.Rows[i]
		for j := range row.Actions {
			switch row.Actions[j].Kind {
			case models.ActionEdit:
				bind(&row.Actions[j], http.MethodPost, fmt.Sprintf("%s/forms/rating/%d", consolePrefix, row.ID))
			case models.ActionDelete:
				bind(&row.Actions[j], http.MethodDelete, fmt.Sprintf("%s/rating/%d", consolePrefix, row.ID))
			}
		}
	}
}

func bindPlayers(v *models.PlayersView) {
	if v.Create != nil {
		bind(v.Create, http.MethodPost, consolePrefix+"/forms/player")
	}
	for i := range v.Rows {
		row := &v.Rows[i]
		for j := range row.Actions {
			if row.Actions[j].Kind == models.ActionDelete {
				bind(&row.Actions[j], http.MethodDelete, fmt.Sprintf("%s/players/%d", consolePrefix, row.ID))
			}
		}
	}
}

var pageRoutes = map[string]string{
	services.PageTournaments: consolePrefix + "/tournaments",
	services.PagePlayers:     consolePrefix + "/players",
	services.PageRating:      consolePrefix + "/rating",
}

func bindMain(v *models.MainView) {
	for i := range v.Menu {
		a := &v.Menu[i]
		switch a.Kind {
		case models.ActionNavigate:
			bind(a, http.MethodGet, pageRoutes[a.Target])
		case models.ActionLogout:
			bind(a, http.MethodPost, consolePrefix+"/auth/logout")
		}
	}
}

func bindForm(v *models.FormView) {
	bind(&v.Save, http.MethodPost, fmt.Sprintf("%s/forms/%s/save", consolePrefix, v.Kind))
	bind(&v.Cancel, http.MethodDelete, consolePrefix+"/forms")
}
