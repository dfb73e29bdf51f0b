package rest

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blindstore-api/internal/application/ports"
	jwtSvc "blindstore-api/internal/infrastructure/jwt"
	"blindstore-api/internal/interface/api/rest/middleware"
)

type StatsController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewStatsController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwtSvc.Service,
) *StatsController {
	sc := &StatsController{
		fileService: fileService,
		logger:      logger,
	}

	r.GET(RouteStats, middleware.AuthMiddleware(jwtService), sc.GetStatsHandler)

	return sc
}

func (sc *StatsController) GetStatsHandler(c *gin.Context) {
	totals, err := sc.fileService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get stats"},
		)
		sc.logger.Error("Stats() error", zap.Error(err))
		return
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	c.JSON(http.StatusOK, gin.H{
		"files": gin.H{
			"count":            totals.Count,
			"total_size_bytes": totals.SizeBytes,
		},
		"runtime": gin.H{
			"alloc_bytes":       ms.Alloc,
			"total_alloc_bytes": ms.TotalAlloc,
			"sys_bytes":         ms.Sys,
			"num_gc":            ms.NumGC,
			"num_goroutine":     runtime.NumGoroutine(),
		},
	})
}
