package converter

import (
	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/domain"
	"github.com/hotelops/roomadmin/internal/service"
	"github.com/hotelops/roomadmin/internal/storage"
)

// Static mount points the router serves stored assets under. The converter
// composes public URLs from these plus the configured base URL; records only
// ever hold bare file names.
const (
	ImageMount = "/static/" + storage.KindImage
	PDFMount   = "/static/" + storage.KindPDF
)

type RoomResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImagePath       *string   `json:"image_path,omitempty"`
	PDFPath         *string   `json:"pdf_path,omitempty"`
	Facilities      []string  `json:"facilities"`
	FacilitiesCount int       `json:"facilities_count"`
	CreatedAtStr    string    `json:"created_at_str"`
	UpdatedAtStr    string    `json:"updated_at_str"`
}

// RoomSummaryResponse is the list-view shape: it carries the facility count
// instead of the full list.
type RoomSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImagePath       *string   `json:"image_path,omitempty"`
	FacilitiesCount int       `json:"facilities_count"`
	CreatedAtStr    string    `json:"created_at_str"`
	UpdatedAtStr    string    `json:"updated_at_str"`
}

type RoomPageResponse struct {
	Data        []RoomSummaryResponse `json:"data"`
	CurrentPage int                   `json:"current_page"`
	PageSize    int                   `json:"page_size"`
	NextPage    *int                  `json:"next_page,omitempty"`
	PrevPage    *int                  `json:"prev_page,omitempty"`
}

func RoomToAPI(r *domain.Room, baseURL string) RoomResponse {
	facilities := r.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	return RoomResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		ImagePath:       assetURL(baseURL, ImageMount, r.Image),
		PDFPath:         assetURL(baseURL, PDFMount, r.PDF),
		Facilities:      facilities,
		FacilitiesCount: len(r.Facilities),
		CreatedAtStr:    r.CreatedAt.Format(domain.DateDisplayFormat),
		UpdatedAtStr:    r.UpdatedAt.Format(domain.DateDisplayFormat),
	}
}

func RoomToSummary(r *domain.Room, baseURL string) RoomSummaryResponse {
	return RoomSummaryResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		ImagePath:       assetURL(baseURL, ImageMount, r.Image),
		FacilitiesCount: len(r.Facilities),
		CreatedAtStr:    r.CreatedAt.Format(domain.DateDisplayFormat),
		UpdatedAtStr:    r.UpdatedAt.Format(domain.DateDisplayFormat),
	}
}

func PageToAPI(p *service.RoomPage, baseURL string) RoomPageResponse {
	data := make([]RoomSummaryResponse, 0, len(p.Rooms))
	for _, room := range p.Rooms {
		data = append(data, RoomToSummary(room, baseURL))
	}

	return RoomPageResponse{
		Data:        data,
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		NextPage:    p.NextPage,
		PrevPage:    p.PrevPage,
	}
}

func assetURL(baseURL, mount, name string) *string {
	if name == "" {
		return nil
	}
	url := baseURL + mount + "/" + name
	return &url
}
