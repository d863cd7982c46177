// Package workflow defines the legal status transitions for videos and
// tickets. The upstream behavior lets any authenticated caller flip a
// terminal status freely (last-write-wins); strict mode tightens that to
// PENDING-only transitions and is enabled per deployment via config.
package workflow

import (
	"errors"
	"fmt"

	"github.com/tapaspot/tapaspot-backend/internal/models"
)

var ErrIllegalTransition = errors.New("illegal status transition")

type videoKey struct {
	from, to models.VideoStatus
}

type ticketKey struct {
	from, to models.TicketStatus
}

var videoTransitions = map[videoKey]bool{
	{models.VideoPending, models.VideoApproved}: true,
	{models.VideoPending, models.VideoRejected}: true,
}

var ticketTransitions = map[ticketKey]bool{
	{models.TicketPending, models.TicketProcessed}: true,
	{models.TicketPending, models.TicketFailed}:    true,
}

// VideoTransition reports whether a video may move from one moderation
// status to another. With strict disabled any transition is allowed.
func VideoTransition(from, to models.VideoStatus, strict bool) error {
	if !strict {
		return nil
	}
	if videoTransitions[videoKey{from, to}] {
		return nil
	}
	return fmt.Errorf("%w: video %s -> %s", ErrIllegalTransition, from, to)
}

// TicketTransition reports whether a ticket may move from one processing
// status to another. With strict disabled any transition is allowed.
func TicketTransition(from, to models.TicketStatus, strict bool) error {
	if !strict {
		return nil
	}
	if ticketTransitions[ticketKey{from, to}] {
		return nil
	}
	return fmt.Errorf("%w: ticket %s -> %s", ErrIllegalTransition, from, to)
}
