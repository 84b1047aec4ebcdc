package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если активности с таким именем нет в каталоге.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp возвращается при повторной записи участника на ту же активность.
	ErrAlreadySignedUp = errors.New("participant already signed up")

	// ErrParticipantNotFound возвращается, если участник не записан на активность.
	ErrParticipantNotFound = errors.New("participant not found in this activity")

	// ErrInvalidSeed возвращается, если начальный каталог некорректен.
	ErrInvalidSeed = errors.New("invalid catalog seed")
)
