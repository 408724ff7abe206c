package model

import "errors"

var (
	// ErrNotFound is returned by stores when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyRegistered is returned when a profile already holds a seat
	// for the conference.
	ErrAlreadyRegistered = errors.New("already registered for this conference")
	// ErrNoSeatsAvailable is returned when a conference has no remaining seats.
	ErrNoSeatsAvailable = errors.New("no seats available")
	// ErrUnavailable is returned when the store failed transiently and the
	// operation may succeed if retried later.
	ErrUnavailable = errors.New("store temporarily unavailable")
)
