package routes

import (
	"movequote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDetections = "/detections"
)

func addDetectionRoutes(rg *gin.RouterGroup, detectionHandler *handlers.DetectionHandler) {
	detections := rg.Group(PathDetections)
	{
		detections.POST("/text", detectionHandler.DetectText)
		detections.POST("/auto", detectionHandler.DetectAuto)
		detections.GET("", detectionHandler.ListJobs)
		detections.GET("/:id", detectionHandler.GetJob)
	}
}
