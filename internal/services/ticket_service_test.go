package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"github.com/tapaspot/tapaspot-backend/internal/workflow"
)

func TestTicketCreateStartsPending(t *testing.T) {
	db := testDB(t)
	svc := NewTicketService(db, false)
	user := createUser(t, db)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	ticket, err := svc.Create(user.ID, restaurant.ID, "https://cdn.example.com/receipt.jpg")
	require.NoError(t, err)
	assert.Equal(t, models.TicketPending, ticket.Status)
	assert.Nil(t, ticket.TotalAmount)
	assert.Nil(t, ticket.PeopleCount)
}

func TestTicketListNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewTicketService(db, false)
	user := createUser(t, db)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	urls := []string{"first.jpg", "second.jpg", "third.jpg"}
	for _, url := range urls {
		_, err := svc.Create(user.ID, restaurant.ID, url)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	tickets, err := svc.FindByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, tickets, 3)

	assert.Equal(t, "third.jpg", tickets[0].ImageURL)
	assert.Equal(t, "second.jpg", tickets[1].ImageURL)
	assert.Equal(t, "first.jpg", tickets[2].ImageURL)
	for i := 1; i < len(tickets); i++ {
		assert.False(t, tickets[i].CreatedAt.After(tickets[i-1].CreatedAt))
	}
	assert.Equal(t, restaurant.ID, tickets[0].Restaurant.ID)
}

func TestTicketUpdateAfterProcessing(t *testing.T) {
	db := testDB(t)
	svc := NewTicketService(db, false)
	user := createUser(t, db)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	ticket, err := svc.Create(user.ID, restaurant.ID, "receipt.jpg")
	require.NoError(t, err)

	total := 42.50
	people := 2
	perPerson := 21.25
	visited := time.Date(2026, 8, 20, 21, 30, 0, 0, time.UTC)

	_, err = svc.UpdateAfterProcessing(ticket.ID, ProcessingUpdate{
		Status:         models.TicketProcessed,
		TotalAmount:    &total,
		PeopleCount:    &people,
		PricePerPerson: &perPerson,
		VisitedAt:      &visited,
	})
	require.NoError(t, err)

	var stored models.Ticket
	require.NoError(t, db.First(&stored, "id = ?", ticket.ID).Error)
	assert.Equal(t, models.TicketProcessed, stored.Status)
	require.NotNil(t, stored.TotalAmount)
	assert.Equal(t, total, *stored.TotalAmount)
	require.NotNil(t, stored.PeopleCount)
	assert.Equal(t, people, *stored.PeopleCount)
	require.NotNil(t, stored.PricePerPerson)
	assert.Equal(t, perPerson, *stored.PricePerPerson)
}

func TestTicketStrictBlocksDoubleProcessing(t *testing.T) {
	db := testDB(t)
	svc := NewTicketService(db, true)
	user := createUser(t, db)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	ticket, err := svc.Create(user.ID, restaurant.ID, "receipt.jpg")
	require.NoError(t, err)

	_, err = svc.UpdateAfterProcessing(ticket.ID, ProcessingUpdate{Status: models.TicketProcessed})
	require.NoError(t, err)

	_, err = svc.UpdateAfterProcessing(ticket.ID, ProcessingUpdate{Status: models.TicketFailed})
	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
}
