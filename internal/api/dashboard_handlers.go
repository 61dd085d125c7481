package api

import (
	"github.com/gin-gonic/gin"

	"github.com/LidiaAlemu/meditrack/internal/auth"
	"github.com/LidiaAlemu/meditrack/internal/service"
)

// GetDashboardSummary recomputes the aggregate view from a fresh list fetch
// on every call; there is no cached or incremental state to invalidate.
func GetDashboardSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)
		ctx, cancel := storageContext(c)
		defer cancel()

		logs, err := service.ListVitalLogs(ctx, app.VitalRepo(), user, service.VitalLogListLimit)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch vital logs for dashboard")
			return
		}
		HandleSuccess(c, app.Logger(), 200, service.BuildSummary(logs), nil)
	}
}
