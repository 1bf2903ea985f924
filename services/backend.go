package services

import (
	"context"

	"github.com/Dosada05/floppoker-console/apiclient"
	"github.com/Dosada05/floppoker-console/models"
)

// Backend - контракт удалённого API турниров. Реализуется *apiclient.Client.
type Backend interface {
	LoginDirector(ctx context.Context, creds models.DirectorCredentials) (*models.User, error)
	LoginTelegram(ctx context.Context, creds models.TelegramCredentials) (*models.User, error)
	Profile(ctx context.Context, userID int) (*models.Profile, error)

	ListTournaments(ctx context.Context, status string) ([]models.Tournament, error)
	GetTournament(ctx context.Context, id int) (*models.Tournament, error)
	CreateTournament(ctx context.Context, input models.TournamentInput) (apiclient.Result, error)
	UpdateTournament(ctx context.Context, id int, input models.TournamentInput) (apiclient.Result, error)
	DeleteTournament(ctx context.Context, id, userID int) (apiclient.Result, error)
	Transition(ctx context.Context, id int, transition string, userID int) (apiclient.Result, error)
	CreateTables(ctx context.Context, id, userID int) (apiclient.Result, error)
	Tables(ctx context.Context, id int) ([]models.Table, error)
	UpdateChips(ctx context.Context, id, userID, playerUserID, chips int) (apiclient.Result, error)
	Register(ctx context.Context, userID, tournamentID int) (apiclient.Result, error)

	Rating(ctx context.Context) ([]models.RatingEntry, error)
	CreateRating(ctx context.Context, input models.RatingInput) (apiclient.Result, error)
	UpdateRating(ctx context.Context, id int, input models.RatingInput) (apiclient.Result, error)
	DeleteRating(ctx context.Context, id, userID int) (apiclient.Result, error)

	Players(ctx context.Context, userID int) ([]models.Player, error)
	CreatePlayer(ctx context.Context, input models.PlayerInput) (apiclient.Result, error)
	DeletePlayer(ctx context.Context, id, userID int) (apiclient.Result, error)
}

var _ Backend = (*apiclient.Client)(nil)
