package repository

import "errors"

// ErrSlotNotFound is returned when a status write targets a missing slot
var ErrSlotNotFound = errors.New("venue slot not found")
