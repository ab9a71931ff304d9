package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/api/http/converter"
	"github.com/hotelops/roomadmin/internal/domain"
	"github.com/hotelops/roomadmin/internal/repository"
	"github.com/hotelops/roomadmin/internal/service"
	"github.com/hotelops/roomadmin/lib/logger/sl"
)

// allowedImageTypes is the set of MIME types accepted for uploaded room
// images. http.DetectContentType covers JPEG, PNG and GIF by magic bytes;
// WebP is sniffed separately because the WHATWG spec the stdlib follows has
// no WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

type RoomController struct {
	rooms         service.RoomInteractor
	log           *slog.Logger
	baseURL       string
	maxUploadSize int64
}

func NewRoomController(rooms service.RoomInteractor, log *slog.Logger, baseURL string, maxUploadSize int64) *RoomController {
	if log == nil {
		log = slog.Default()
	}
	return &RoomController{
		rooms:         rooms,
		log:           log,
		baseURL:       baseURL,
		maxUploadSize: maxUploadSize,
	}
}

func (c *RoomController) ListRooms(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "page: must be a positive integer"})
		return
	}

	pageSize := 0
	if raw := ctx.Query("page_size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "page_size: must be a positive integer"})
			return
		}
	}

	result, err := c.rooms.ListRooms(ctx.Request.Context(), page, pageSize)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
			return
		}
		c.fail(ctx, "list rooms failed", err)
		return
	}

	ctx.JSON(http.StatusOK, converter.PageToAPI(result, c.baseURL))
}

func (c *RoomController) GetRoom(ctx *gin.Context) {
	id, ok := c.roomID(ctx)
	if !ok {
		return
	}

	room, err := c.rooms.GetRoom(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.fail(ctx, "get room failed", err)
		return
	}

	ctx.JSON(http.StatusOK, converter.RoomToAPI(room, c.baseURL))
}

func (c *RoomController) CreateRoom(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "image: is required"})
		return
	}
	defer file.Close()

	if header.Size > c.maxUploadSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image: too large"})
		return
	}

	imageData, err := io.ReadAll(io.LimitReader(file, c.maxUploadSize))
	if err != nil {
		c.fail(ctx, "read upload failed", err)
		return
	}

	mimeType, ok := allowedImageMIME(imageData)
	if !ok {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "image: unsupported format"})
		return
	}

	facilities, ok := c.facilities(ctx)
	if !ok {
		return
	}

	room, err := c.rooms.CreateRoom(ctx.Request.Context(), service.CreateRoomInput{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		Facilities:  facilities,
		Image:       bytes.NewReader(imageData),
		ImageMIME:   mimeType,
	})
	if err != nil {
		c.respondRoomError(ctx, "create room failed", err)
		return
	}

	ctx.JSON(http.StatusCreated, converter.RoomToAPI(room, c.baseURL))
}

func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := c.roomID(ctx)
	if !ok {
		return
	}

	facilities, ok := c.facilities(ctx)
	if !ok {
		return
	}

	room, err := c.rooms.UpdateRoom(ctx.Request.Context(), id, service.UpdateRoomInput{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		Facilities:  facilities,
	})
	if err != nil {
		c.respondRoomError(ctx, "update room failed", err)
		return
	}

	ctx.JSON(http.StatusOK, converter.RoomToAPI(room, c.baseURL))
}

func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := c.roomID(ctx)
	if !ok {
		return
	}

	if err := c.rooms.DeleteRoom(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.fail(ctx, "delete room failed", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *RoomController) GenerateBrochure(ctx *gin.Context) {
	id, ok := c.roomID(ctx)
	if !ok {
		return
	}

	room, err := c.rooms.GenerateBrochure(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, service.ErrRenderFailed):
			c.log.Error("brochure render failed", slog.String("room_id", id.String()), sl.Err(err))
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "brochure render failed"})
		default:
			c.fail(ctx, "generate brochure failed", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, converter.RoomToAPI(room, c.baseURL))
}

func (c *RoomController) roomID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("roomID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return uuid.Nil, false
	}
	return id, true
}

// facilities parses the "facilities" form field, a JSON array of strings.
// An absent or empty field means no facilities.
func (c *RoomController) facilities(ctx *gin.Context) ([]string, bool) {
	raw := ctx.PostForm("facilities")
	if raw == "" {
		return nil, true
	}

	var facilities []string
	if err := json.Unmarshal([]byte(raw), &facilities); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "facilities: must be a JSON array of strings"})
		return nil, false
	}
	return facilities, true
}

func (c *RoomController) respondRoomError(ctx *gin.Context, msg string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
	case errors.As(err, &verr):
		status := http.StatusBadRequest
		if verr.Field == "image" {
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, gin.H{"error": verr.Error()})
	default:
		c.fail(ctx, msg, err)
	}
}

func (c *RoomController) fail(ctx *gin.Context, msg string, err error) {
	c.log.Error(msg, sl.Err(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
