// Package lifecycle проецирует снимок турнира на представление: статус, доступные
// действия, ростер и рассадку. Все функции чистые и не обращаются к сети.
package lifecycle

import "github.com/Dosada05/floppoker-console/models"

// Transition - переход жизненного цикла, который директор может запросить у бэкенда.
// Значение совпадает с последним сегментом пути бэкенда.
type Transition string

const (
	TransitionStart        Transition = "start"
	TransitionCloseLateReg Transition = "close-late-reg"
	TransitionComplete     Transition = "complete"
)

const fallbackBadgeClass = "status-registration"

type edge struct {
	transition Transition
	to         models.TournamentStatus
}

type statusInfo struct {
	badge            models.StatusBadge
	live             bool
	registrationOpen bool
	edges            []edge
}

// statusTable - единственное место, где описан жизненный цикл.
// Классификатор, гейт действий и ростер читают только его.
var statusTable = map[models.TournamentStatus]statusInfo{
	models.StatusRegistration: {
		badge:            models.StatusBadge{Class: "status-registration", Text: "Регистрация"},
		registrationOpen: true,
		edges: []edge{
			{TransitionStart, models.StatusLateRegistration},
		},
	},
	models.StatusLateRegistration: {
		badge:            models.StatusBadge{Class: "status-late_registration", Text: "Поздняя регистрация"},
		live:             true,
		registrationOpen: true,
		edges: []edge{
			{TransitionCloseLateReg, models.StatusActiveNoLateReg},
			{TransitionComplete, models.StatusCompleted},
		},
	},
	// active достижим только внешним изменением на бэкенде (истекло время поздней регистрации).
	models.StatusActive: {
		badge: models.StatusBadge{Class: "status-active", Text: "Идет турнир"},
		live:  true,
		edges: []edge{
			{TransitionCloseLateReg, models.StatusActiveNoLateReg},
			{TransitionComplete, models.StatusCompleted},
		},
	},
	models.StatusActiveNoLateReg: {
		badge: models.StatusBadge{Class: "status-active_no_late_reg", Text: "Регистрация закрыта"},
		live:  true,
		edges: []edge{
			{TransitionComplete, models.StatusCompleted},
		},
	},
	models.StatusCompleted: {
		badge: models.StatusBadge{Class: "status-completed", Text: "Завершен"},
	},
}

// Statuses возвращает известные статусы в порядке жизненного цикла.
func Statuses() []models.TournamentStatus {
	return []models.TournamentStatus{
		models.StatusRegistration,
		models.StatusLateRegistration,
		models.StatusActive,
		models.StatusActiveNoLateReg,
		models.StatusCompleted,
	}
}

// ParseStatus сообщает, известен ли статус.
func ParseStatus(raw string) (models.TournamentStatus, bool) {
	status := models.TournamentStatus(raw)
	_, ok := statusTable[status]
	return status, ok
}

// Classify отображает статус в бейдж. Неизвестный статус выводится как есть
// с классом по умолчанию.
func Classify(status models.TournamentStatus) models.StatusBadge {
	if info, ok := statusTable[status]; ok {
		return info.badge
	}
	return models.StatusBadge{Class: fallbackBadgeClass, Text: string(status)}
}

// IsLive - турнир идёт (фишки сортируются и редактируются).
func IsLive(status models.TournamentStatus) bool {
	return statusTable[status].live
}

// RegistrationOpen - игроки ещё могут регистрироваться.
func RegistrationOpen(status models.TournamentStatus) bool {
	return statusTable[status].registrationOpen
}

// IsTerminal - из статуса нет переходов.
func IsTerminal(status models.TournamentStatus) bool {
	info, ok := statusTable[status]
	return ok && len(info.edges) == 0
}

// Transitions возвращает переходы, доступные директору, в порядке отображения.
func Transitions(status models.TournamentStatus) []Transition {
	edges := statusTable[status].edges
	out := make([]Transition, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.transition)
	}
	return out
}

// Next возвращает статус, в который бэкенд переведёт турнир.
func Next(from models.TournamentStatus, t Transition) (models.TournamentStatus, bool) {
	for _, e := range statusTable[from].edges {
		if e.transition == t {
			return e.to, true
		}
	}
	return "", false
}

func CanTransition(from models.TournamentStatus, t Transition) bool {
	_, ok := Next(from, t)
	return ok
}

// ParseTransition разбирает сегмент пути консоли.
func ParseTransition(raw string) (Transition, bool) {
	switch t := Transition(raw); t {
	case TransitionStart, TransitionCloseLateReg, TransitionComplete:
		return t, true
	default:
		return "", false
	}
}
