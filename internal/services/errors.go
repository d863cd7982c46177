package services

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrVideoNotFound      = errors.New("video not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrUserNotFound       = errors.New("user not found")
)
