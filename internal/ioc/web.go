package ioc

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"

	"gitee.com/flycash/varsling-platform/internal/pkg/health"
	"gitee.com/flycash/varsling-platform/internal/repository"
	"gitee.com/flycash/varsling-platform/internal/service/brake"
)

// InitWebServer 运维面接口：存活探针、队列水位和紧急刹车开关
func InitWebServer(repo repository.VarslingRepository, brakes brake.Service) *egin.Component {
	router := egin.Load("server.web").Build()
	router.Use(gin.Recovery())

	internal := router.Group("/internal")

	internal.GET("/alive", func(c *gin.Context) {
		if !health.Alive() {
			c.JSON(http.StatusServiceUnavailable, health.Snapshot())
			return
		}
		c.JSON(http.StatusOK, health.Snapshot())
	})

	internal.GET("/status", func(c *gin.Context) {
		ctx := c.Request.Context()
		jobs, err := repo.JobQueueCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		waiting, err := repo.WaitQueueCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		stopped, err := brakes.Stopped(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"jobQueue":  jobs,
			"waitQueue": waiting,
			"stopped":   stopped,
		})
	})

	internal.POST("/brake/on", func(c *gin.Context) {
		type req struct {
			Reason string `json:"reason"`
		}
		var r req
		_ = c.ShouldBindJSON(&r)
		if err := brakes.TurnOn(c.Request.Context(), r.Reason); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	internal.POST("/brake/off", func(c *gin.Context) {
		if err := brakes.TurnOff(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	return router
}
