package api

import (
	"github.com/gin-gonic/gin"

	"github.com/LidiaAlemu/meditrack/internal/auth"
	"github.com/LidiaAlemu/meditrack/internal/service"
)

func ListVitals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)
		ctx, cancel := storageContext(c)
		defer cancel()

		logs, err := service.ListVitalLogs(ctx, app.VitalRepo(), user, service.VitalLogListLimit)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch vital logs")
			return
		}
		HandleSuccess(c, app.Logger(), 200, logs, nil)
	}
}

func PostVital(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		var body service.VitalLogRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateVitalLogRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Vital log validation failed")
			return
		}

		ctx, cancel := storageContext(c)
		defer cancel()

		log, err := service.CreateVitalLog(ctx, app.VitalRepo(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save vital log")
			return
		}
		HandleSuccess(c, app.Logger(), 201, log, nil)
	}
}

func DeleteVital(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)
		ctx, cancel := storageContext(c)
		defer cancel()

		if err := service.DeleteVitalLog(ctx, app.VitalRepo(), user, c.Param("id")); err != nil {
			HandleStorageError(c, app.Logger(), err, "Vital log not found", "Failed to delete vital log")
			return
		}
		HandleSuccess(c, app.Logger(), 200, nil, map[string]any{"message": "Vital log deleted successfully"})
	}
}
