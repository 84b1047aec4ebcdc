// Package service содержит бизнес-логику записи участников на активности.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"activity-signup-service/internal/model"
	"activity-signup-service/internal/observability"
	"activity-signup-service/internal/repository"
)

// CodeAlreadySignedUp задаёт код доменной ошибки повторной записи.
const CodeAlreadySignedUp = "ALREADY_SIGNED_UP"

//go:generate mockery --name=RosterRepository --output=mocks --outpkg=mocks

// RosterRepository описывает контракт хранилища составов для бизнес-слоя.
type RosterRepository interface {
	List() model.Catalog
	Enroll(activityName, email string) (model.Activity, error)
	Withdraw(activityName, email string) (model.Activity, error)
}

// ActivityService инкапсулирует запись и отписку участников и чтение каталога.
type ActivityService struct {
	repo RosterRepository
	log  *slog.Logger
}

// NewActivityService создаёт новый сервис активностей.
func NewActivityService(repo RosterRepository, log *slog.Logger) *ActivityService {
	return &ActivityService{
		repo: repo,
		log:  log,
	}
}

// ListActivities возвращает снимок всего каталога.
func (s *ActivityService) ListActivities(ctx context.Context) (model.Catalog, error) {
	return s.repo.List(), nil
}

// Signup записывает участника на активность.
// Неизвестная активность даёт 404, повторная запись даёт доменную ошибку ALREADY_SIGNED_UP.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) (model.SignupResult, error) {
	if activityName == "" || email == "" {
		observability.RecordEnroll(activityName, observability.OutcomeInvalid)
		return model.SignupResult{}, ErrValidation("activity_name and email are required")
	}

	activity, err := s.repo.Enroll(activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			observability.RecordEnroll(activityName, observability.OutcomeActivityNotFound)
			return model.SignupResult{}, ErrNotFound("Activity not found")
		case errors.Is(err, repository.ErrAlreadySignedUp):
			observability.RecordEnroll(activityName, observability.OutcomeAlreadySignedUp)
			return model.SignupResult{}, ErrDomain(CodeAlreadySignedUp, "Student is already signed up for this activity")
		default:
			observability.RecordEnroll(activityName, observability.OutcomeError)
			return model.SignupResult{}, ErrInternal("failed to sign up", err)
		}
	}

	observability.RecordEnroll(activityName, observability.OutcomeSuccess)
	s.logRoster(ctx, activity, "participant signed up", email)

	return model.SignupResult{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// Unregister отписывает участника от активности.
// Неизвестная активность и отсутствующий участник различаются текстом 404-ошибки.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) (model.SignupResult, error) {
	if activityName == "" || email == "" {
		observability.RecordWithdraw(activityName, observability.OutcomeInvalid)
		return model.SignupResult{}, ErrValidation("activity_name and email are required")
	}

	activity, err := s.repo.Withdraw(activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			observability.RecordWithdraw(activityName, observability.OutcomeActivityNotFound)
			return model.SignupResult{}, ErrNotFound("Activity not found")
		case errors.Is(err, repository.ErrParticipantNotFound):
			observability.RecordWithdraw(activityName, observability.OutcomeParticipantMissing)
			return model.SignupResult{}, ErrNotFound("Participant not found in this activity")
		default:
			observability.RecordWithdraw(activityName, observability.OutcomeError)
			return model.SignupResult{}, ErrInternal("failed to unregister", err)
		}
	}

	observability.RecordWithdraw(activityName, observability.OutcomeSuccess)
	s.logRoster(ctx, activity, "participant unregistered", email)

	return model.SignupResult{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

// logRoster пишет событие изменения состава. Снимок активности получен под блокировкой хранилища.
func (s *ActivityService) logRoster(ctx context.Context, a model.Activity, msg, email string) {
	attrs := []any{
		slog.String("activity", a.Name),
		slog.String("email", email),
		slog.Int("participants", len(a.Participants)),
		slog.Int("max_participants", a.MaxParticipants),
	}
	if len(a.Participants) > a.MaxParticipants {
		s.log.WarnContext(ctx, msg+" over capacity", attrs...)
		return
	}
	s.log.InfoContext(ctx, msg, attrs...)
}
