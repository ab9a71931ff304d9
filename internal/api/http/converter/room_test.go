package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/domain"
	"github.com/hotelops/roomadmin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://rooms.example.com"

func sampleRoom() *domain.Room {
	created := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Room{
		ID:          uuid.New(),
		Title:       "Deluxe Suite",
		Description: "Sea view",
		Facilities:  []string{"WiFi", "Mini Bar"},
		Image:       "deluxe_1.jpg",
		CreatedAt:   created,
		UpdatedAt:   created.Add(24 * time.Hour),
	}
}

func TestRoomToAPI(t *testing.T) {
	room := sampleRoom()
	resp := RoomToAPI(room, baseURL)

	assert.Equal(t, room.ID, resp.ID)
	assert.Equal(t, []string{"WiFi", "Mini Bar"}, resp.Facilities)
	assert.Equal(t, 2, resp.FacilitiesCount)
	assert.Equal(t, "01/09/2026", resp.CreatedAtStr)
	assert.Equal(t, "02/09/2026", resp.UpdatedAtStr)

	require.NotNil(t, resp.ImagePath)
	assert.Equal(t, baseURL+"/static/images/deluxe_1.jpg", *resp.ImagePath)
	assert.Nil(t, resp.PDFPath)
}

func TestRoomToAPIWithPDF(t *testing.T) {
	room := sampleRoom()
	room.PDF = "deluxe_2.pdf"

	resp := RoomToAPI(room, baseURL)
	require.NotNil(t, resp.PDFPath)
	assert.Equal(t, baseURL+"/static/pdfs/deluxe_2.pdf", *resp.PDFPath)
}

func TestRoomToAPIEmptyFacilities(t *testing.T) {
	room := sampleRoom()
	room.Facilities = nil

	resp := RoomToAPI(room, baseURL)
	// Serializes as [] rather than null.
	assert.NotNil(t, resp.Facilities)
	assert.Empty(t, resp.Facilities)
	assert.Equal(t, 0, resp.FacilitiesCount)
}

func TestRoomToSummary(t *testing.T) {
	resp := RoomToSummary(sampleRoom(), baseURL)
	assert.Equal(t, 2, resp.FacilitiesCount)
	assert.Equal(t, "Deluxe Suite", resp.Title)
	require.NotNil(t, resp.ImagePath)
}

func TestPageToAPI(t *testing.T) {
	next := 3
	prev := 1
	page := &service.RoomPage{
		Rooms:    []*domain.Room{sampleRoom()},
		Page:     2,
		PageSize: 10,
		NextPage: &next,
		PrevPage: &prev,
	}

	resp := PageToAPI(page, baseURL)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 10, resp.PageSize)
	require.NotNil(t, resp.NextPage)
	assert.Equal(t, 3, *resp.NextPage)
	require.NotNil(t, resp.PrevPage)
	assert.Equal(t, 1, *resp.PrevPage)
}
