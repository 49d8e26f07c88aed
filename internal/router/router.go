package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/contractcheck/backend/config"
	"github.com/contractcheck/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	analysisHandler *handler.AnalysisHandler,
	docHandler *handler.DocumentHandler,
	tipsHandler *handler.TipsHandler,
	recordHandler *handler.RecordHandler,
	configHandler *handler.ConfigHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		ocr := api.Group("/ocr")
		{
			ocr.POST("/extract", docHandler.Extract)
			ocr.POST("/structure", docHandler.Structure)
		}

		analysis := api.Group("/analysis")
		{
			analysis.POST("/analyze", analysisHandler.Analyze)
			analysis.POST("/generate/contract", analysisHandler.GenerateContract)
		}

		records := api.Group("/records")
		{
			records.GET("", recordHandler.List)
			records.GET("/:id", recordHandler.Get)
			records.DELETE("/:id", recordHandler.Delete)
			records.GET("/:id/contracts", recordHandler.GetContracts)
		}

		api.GET("/tips/random", tipsHandler.Random)
		api.GET("/config", configHandler.Get)
		api.GET("/database/files", configHandler.ListDataFiles)
	}

	return r
}
