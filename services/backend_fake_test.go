package services

import (
	"context"
	"errors"
	"sync"

	"github.com/Dosada05/floppoker-console/apiclient"
	"github.com/Dosada05/floppoker-console/models"
)

// fakeBackend - бэкенд в памяти. Каждый вызов учитывается в calls.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	users       map[string]models.User
	profiles    map[int]*models.Profile
	profileErr  error
	tournaments map[int]models.Tournament
	tables      map[int][]models.Table
	rating      []models.RatingEntry
	players     []models.Player
	failWith    error

	lastTournamentInput models.TournamentInput
	lastRatingInput     models.RatingInput
	lastPlayerInput     models.PlayerInput
	lastTransition      string
	lastChips           int

	// beforeGet вызывается внутри GetTournament, до ответа.
	beforeGet func(id int)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		calls:       make(map[string]int),
		users:       make(map[string]models.User),
		profiles:    make(map[int]*models.Profile),
		tournaments: make(map[int]models.Tournament),
		tables:      make(map[int][]models.Table),
	}
}

func (f *fakeBackend) track(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.failWith
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeBackend) LoginDirector(_ context.Context, creds models.DirectorCredentials) (*models.User, error) {
	if err := f.track("LoginDirector"); err != nil {
		return nil, err
	}
	u, ok := f.users[creds.Username]
	if !ok {
		return nil, &apiclient.APIError{Message: "Неверные учетные данные"}
	}
	return &u, nil
}

func (f *fakeBackend) LoginTelegram(_ context.Context, creds models.TelegramCredentials) (*models.User, error) {
	if err := f.track("LoginTelegram"); err != nil {
		return nil, err
	}
	u, ok := f.users[creds.TelegramUsername]
	if !ok {
		return nil, &apiclient.APIError{Message: "Пользователь не найден"}
	}
	return &u, nil
}

func (f *fakeBackend) Profile(_ context.Context, userID int) (*models.Profile, error) {
	if err := f.track("Profile"); err != nil {
		return nil, err
	}
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, &apiclient.APIError{Message: "Профиль не найден"}
	}
	return p, nil
}

func (f *fakeBackend) ListTournaments(_ context.Context, status string) ([]models.Tournament, error) {
	if err := f.track("ListTournaments"); err != nil {
		return nil, err
	}
	var out []models.Tournament
	for id := 1; id <= len(f.tournaments)+10; id++ {
		t, ok := f.tournaments[id]
		if ok && (status == "" || string(t.Status) == status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeBackend) GetTournament(_ context.Context, id int) (*models.Tournament, error) {
	if f.beforeGet != nil {
		f.beforeGet(id)
	}
	if err := f.track("GetTournament"); err != nil {
		return nil, err
	}
	t, ok := f.tournaments[id]
	if !ok {
		return nil, &apiclient.APIError{Message: "Турнир не найден"}
	}
	return &t, nil
}

func (f *fakeBackend) CreateTournament(_ context.Context, input models.TournamentInput) (apiclient.Result, error) {
	if err := f.track("CreateTournament"); err != nil {
		return apiclient.Result{}, err
	}
	f.lastTournamentInput = input
	return apiclient.Result{Message: "ok"}, nil
}

func (f *fakeBackend) UpdateTournament(_ context.Context, _ int, input models.TournamentInput) (apiclient.Result, error) {
	if err := f.track("UpdateTournament"); err != nil {
		return apiclient.Result{}, err
	}
	f.lastTournamentInput = input
	return apiclient.Result{Message: "ok"}, nil
}

func (f *fakeBackend) DeleteTournament(_ context.Context, id, _ int) (apiclient.Result, error) {
	if err := f.track("DeleteTournament"); err != nil {
		return apiclient.Result{}, err
	}
	delete(f.tournaments, id)
	return apiclient.Result{}, nil
}

func (f *fakeBackend) Transition(_ context.Context, _ int, transition string, _ int) (apiclient.Result, error) {
	if err := f.track("Transition"); err != nil {
		return apiclient.Result{}, err
	}
	f.lastTransition = transition
	return apiclient.Result{Message: "Турнир начат"}, nil
}

func (f *fakeBackend) CreateTables(_ context.Context, _, _ int) (apiclient.Result, error) {
	if err := f.track("CreateTables"); err != nil {
		return apiclient.Result{}, err
	}
	return apiclient.Result{Message: "Столы созданы"}, nil
}

func (f *fakeBackend) Tables(_ context.Context, id int) ([]models.Table, error) {
	if err := f.track("Tables"); err != nil {
		return nil, err
	}
	return f.tables[id], nil
}

func (f *fakeBackend) UpdateChips(_ context.Context, _, _, _, chips int) (apiclient.Result, error) {
	if err := f.track("UpdateChips"); err != nil {
		return apiclient.Result{}, err
	}
	f.lastChips = chips
	return apiclient.Result{}, nil
}

func (f *fakeBackend) Register(_ context.Context, _, _ int) (apiclient.Result, error) {
	if err := f.track("Register"); err != nil {
		return apiclient.Result{}, err
	}
	return apiclient.Result{Message: "Вы зарегистрированы"}, nil
}

func (f *fakeBackend) Rating(context.Context) ([]models.RatingEntry, error) {
	if err := f.track("Rating"); err != nil {
		return nil, err
	}
	return f.rating, nil
}

func (f *fakeBackend) CreateRating(_ context.Context, input models.RatingInput) (apiclient.Result, error) {
	if err := f.track("CreateRating"); err != nil {
		return apiclient.Result{}, err
	}
	f.lastRatingInput = input
	return apiclient.Result{}, nil
}

func (f *fakeBackend) UpdateRating(_ context.Context, _ int, input models.RatingInput) (apiclient.Result, error) {
	if err := f.track("UpdateRating"); err != nil {
		return apiclient.Result{}, err
	}
	f.lastRatingInput = input
	return apiclient.Result{}, nil
}

func (f *fakeBackend) DeleteRating(_ context.Context, _, _ int) (apiclient.Result, error) {
	if err := f.track("DeleteRating"); err != nil {
		return apiclient.Result{}, err
	}
	return apiclient.Result{}, nil
}

func (f *fakeBackend) Players(context.Context, int) ([]models.Player, error) {
	if err := f.track("Players"); err != nil {
		return nil, err
	}
	return f.players, nil
}

func (f *fakeBackend) CreatePlayer(_ context.Context, input models.PlayerInput) (apiclient.Result, error) {
	if err := f.track("CreatePlayer"); err != nil {
		return apiclient.Result{}, err
	}
	f.lastPlayerInput = input
	return apiclient.Result{}, nil
}

func (f *fakeBackend) DeletePlayer(_ context.Context, _, _ int) (apiclient.Result, error) {
	if err := f.track("DeletePlayer"); err != nil {
		return apiclient.Result{}, err
	}
	return apiclient.Result{}, nil
}

var errNetwork = &apiclient.TransportError{Method: "GET", Path: "/api/x", Err: errors.New("connection refused")}

var (
	director = models.User{ID: 1, Role: models.RoleDirector, FullName: "Иван Петров", Username: "boss"}
	player   = models.User{ID: 7, Role: models.RolePlayer, FullName: "Пётр", TelegramUsername: "petr"}
)
