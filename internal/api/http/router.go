package http

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hotelops/roomadmin/internal/api/http/converter"
	"github.com/hotelops/roomadmin/internal/storage"
)

type RouterConfig struct {
	AllowOrigins []string
	// StorageRoot, when non-empty, gets its images/ and pdfs/
	// sub-directories mounted under /static so stored assets are
	// reachable at the URLs the converter emits.
	StorageRoot string
}

func SetupRouter(roomController *RoomController, cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	if cfg.StorageRoot != "" {
		router.Static(converter.ImageMount, filepath.Join(cfg.StorageRoot, storage.KindImage))
		router.Static(converter.PDFMount, filepath.Join(cfg.StorageRoot, storage.KindPDF))
	}

	api := router.Group("/api")

	if roomController != nil {
		rooms := api.Group("/rooms")
		rooms.GET("", roomController.ListRooms)
		rooms.POST("", roomController.CreateRoom)
		rooms.GET("/:roomID", roomController.GetRoom)
		rooms.PUT("/:roomID", roomController.UpdateRoom)
		rooms.DELETE("/:roomID", roomController.DeleteRoom)
		rooms.POST("/:roomID/pdf", roomController.GenerateBrochure)
	}

	return router
}
