package lifecycle

import "github.com/Dosada05/floppoker-console/models"

// Viewer - тот, для кого строится представление.
type Viewer struct {
	UserID int
	Role   models.UserRole
}

func ViewerOf(u models.User) Viewer {
	return Viewer{UserID: u.ID, Role: u.Role}
}

func (v Viewer) IsDirector() bool {
	return v.Role == models.RoleDirector
}

type transitionControl struct {
	kind    models.ActionKind
	label   string
	confirm string
}

var transitionControls = map[Transition]transitionControl{
	TransitionStart: {
		kind:    models.ActionStart,
		label:   "▶️ Начать турнир",
		confirm: "Начать турнир? После начала будет доступна поздняя регистрация до указанного времени.",
	},
	TransitionCloseLateReg: {
		kind:    models.ActionCloseLateReg,
		label:   "🚫 Закрыть регистрацию",
		confirm: "Закрыть позднюю регистрацию? После этого новые игроки не смогут присоединиться к турниру.",
	},
	TransitionComplete: {
		kind:    models.ActionComplete,
		label:   "🏁 Завершить турнир",
		confirm: "Завершить турнир? Это действие нельзя отменить.",
	},
}

// TransitionFor возвращает переход, которому соответствует действие.
func TransitionFor(kind models.ActionKind) (Transition, bool) {
	for t, c := range transitionControls {
		if c.kind == kind {
			return t, true
		}
	}
	return "", false
}

// ComputeActions вычисляет элементы управления детального просмотра турнира.
// Правила аддитивны, порядок результата фиксирован:
// регистрация, столы, переходы директора, создание столов, закрытие.
func ComputeActions(t models.Tournament, v Viewer) []models.Action {
	actions := make([]models.Action, 0, 6)

	// Гейт регистрации - членство в списке игроков, а не роль.
	if RegistrationOpen(t.Status) && !t.HasPlayer(v.UserID) {
		actions = append(actions, models.Action{
			Kind:    models.ActionRegister,
			Label:   "Зарегистрироваться",
			Confirm: "Вы уверены, что хотите зарегистрироваться на турнир?",
		})
	}

	actions = append(actions, models.Action{Kind: models.ActionShowTables, Label: "📋 Показать столы"})

	if v.IsDirector() {
		for _, tr := range Transitions(t.Status) {
			c := transitionControls[tr]
			actions = append(actions, models.Action{Kind: c.kind, Label: c.label, Confirm: c.confirm})
		}
		actions = append(actions, models.Action{
			Kind:    models.ActionCreateTables,
			Label:   "🎯 Создать столы",
			Confirm: "Создать столы для турнира? Игроки будут автоматически распределены.",
		})
	}

	actions = append(actions, models.Action{Kind: models.ActionClose, Label: "Закрыть"})
	return actions
}

// DirectorOnly сообщает, доступно ли действие только директору.
func DirectorOnly(kind models.ActionKind) bool {
	switch kind {
	case models.ActionStart, models.ActionCloseLateReg, models.ActionComplete,
		models.ActionCreateTables, models.ActionUpdateChips,
		models.ActionEdit, models.ActionDelete, models.ActionCreate:
		return true
	default:
		return false
	}
}
