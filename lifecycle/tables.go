package lifecycle

import (
	"errors"
	"fmt"

	"github.com/Dosada05/floppoker-console/models"
)

// ErrSeatNumberMissing - бэкенд прислал место без номера. Номера мест консоль не придумывает.
var ErrSeatNumberMissing = errors.New("seat without seat number")

const (
	tablesEmpty = "Столы не созданы"
	seatsEmpty  = "Нет игроков за столом"
)

// RenderTables раскладывает рассадку по столам в порядке, присланном бэкендом.
func RenderTables(tournamentID int, tables []models.Table) (models.TablesView, error) {
	view := models.TablesView{
		TournamentID: tournamentID,
		Tables:       make([]models.TableView, 0, len(tables)),
	}
	for _, table := range tables {
		tv, err := RenderTable(table)
		if err != nil {
			return models.TablesView{}, err
		}
		view.Tables = append(view.Tables, tv)
	}
	if len(view.Tables) == 0 {
		view.Empty = tablesEmpty
	}
	return view, nil
}

// RenderTable отображает один стол. Порядок мест не меняется.
func RenderTable(table models.Table) (models.TableView, error) {
	tv := models.TableView{
		Number:    table.TableNumber,
		Title:     fmt.Sprintf("Стол %d", table.TableNumber),
		Occupancy: fmt.Sprintf("%d/%d игроков", table.CurrentPlayers, table.MaxPlayers),
		Seats:     make([]models.SeatView, 0, len(table.Players)),
	}
	for _, seat := range table.Players {
		if seat.SeatNumber <= 0 {
			return models.TableView{}, fmt.Errorf("table %d, player %q: %w", table.TableNumber, seat.FullName, ErrSeatNumberMissing)
		}
		tv.Seats = append(tv.Seats, models.SeatView{
			SeatNumber:   seat.SeatNumber,
			FullName:     seat.FullName,
			Rating:       seat.Rating,
			Chips:        seat.Chips,
			ChipsDisplay: FormatChips(seat.Chips),
		})
	}
	if len(tv.Seats) == 0 {
		tv.Empty = seatsEmpty
	}
	return tv, nil
}
