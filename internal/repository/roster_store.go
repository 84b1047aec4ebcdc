// Package repository содержит хранилище составов активностей.
package repository

import (
	"fmt"
	"sync"

	"activity-signup-service/internal/model"
)

// RosterStore хранит каталог активностей в памяти и применяет к нему запись и отписку участников.
// Набор активностей фиксируется при создании; меняются только списки участников.
type RosterStore struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	observers  []RosterObserver
}

// RosterObserver получает размер состава активности: при создании хранилища для каждой активности
// и после каждого успешного изменения. Изменения сообщаются под блокировкой хранилища, поэтому
// наблюдатели видят размеры в том же порядке, в котором они применялись.
type RosterObserver func(activityName string, size int)

// NewRosterStore создаёт хранилище из начального каталога.
// Дубликаты имён и неположительная вместимость считаются ошибкой seed'а;
// повторяющиеся участники внутри одной активности схлопываются с сохранением порядка.
func NewRosterStore(seed []model.Activity, observers ...RosterObserver) (*RosterStore, error) {
	activities := make(map[string]*model.Activity, len(seed))
	for _, a := range seed {
		if a.Name == "" {
			return nil, fmt.Errorf("%w: activity name is empty", ErrInvalidSeed)
		}
		if _, dup := activities[a.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate activity %q", ErrInvalidSeed, a.Name)
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("%w: activity %q has non-positive max_participants", ErrInvalidSeed, a.Name)
		}

		stored := a
		stored.Participants = dedupe(a.Participants)
		activities[a.Name] = &stored
	}

	s := &RosterStore{activities: activities, observers: observers}
	for name, a := range activities {
		s.notify(name, len(a.Participants))
	}
	return s, nil
}

// List возвращает снимок всего каталога. Снимок не разделяет память с хранилищем.
func (s *RosterStore) List() model.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(model.Catalog, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}
	return out
}

// Enroll добавляет участника в конец списка активности и возвращает снимок активности после изменения.
// Вместимость (MaxParticipants) не проверяется.
func (s *RosterStore) Enroll(activityName, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activityName]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return model.Activity{}, ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	s.notify(activityName, len(a.Participants))
	return a.Clone(), nil
}

// Withdraw удаляет участника из активности, сохраняя порядок остальных,
// и возвращает снимок активности после изменения.
func (s *RosterStore) Withdraw(activityName, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activityName]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			s.notify(activityName, len(a.Participants))
			return a.Clone(), nil
		}
	}
	return model.Activity{}, ErrParticipantNotFound
}

func (s *RosterStore) notify(activityName string, size int) {
	for _, observe := range s.observers {
		observe(activityName, size)
	}
}

func dedupe(participants []string) []string {
	seen := make(map[string]struct{}, len(participants))
	out := make([]string, 0, len(participants))
	for _, p := range participants {
		if _, skip := seen[p]; skip {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
