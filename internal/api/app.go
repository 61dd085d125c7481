package api

import (
	"github.com/gin-gonic/gin"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/auth"
	"github.com/LidiaAlemu/meditrack/internal/storage"
)

type App interface {
	Logger() internal.Logger
	VitalRepo() storage.VitalLogRepository
	MedicationRepo() storage.MedicationRepository
}

// NewRouter wires middleware and routes. Everything under /api requires a
// resolved identity; /health does not.
func NewRouter(app App, provider auth.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	protected := r.Group("/api")
	protected.Use(auth.Middleware(provider))

	protected.GET("/vitals", ListVitals(app))
	protected.POST("/vitals", PostVital(app))
	protected.DELETE("/vitals/:id", DeleteVital(app))

	protected.GET("/medications", ListMedications(app))
	protected.POST("/medications", PostMedication(app))
	protected.PATCH("/medications/:id/taken", PatchMedicationTaken(app))
	protected.DELETE("/medications/:id", DeleteMedication(app))

	protected.GET("/dashboard/summary", GetDashboardSummary(app))

	return r
}
