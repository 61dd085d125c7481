package api

import (
	"github.com/gin-gonic/gin"

	"github.com/LidiaAlemu/meditrack/internal/auth"
	"github.com/LidiaAlemu/meditrack/internal/service"
)

func ListMedications(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)
		ctx, cancel := storageContext(c)
		defer cancel()

		meds, err := service.ListMedications(ctx, app.MedicationRepo(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch medications")
			return
		}
		HandleSuccess(c, app.Logger(), 200, meds, nil)
	}
}

func PostMedication(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		var req service.MedicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: name and dosage required")
			return
		}
		if err := service.ValidateMedicationRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Medication validation failed")
			return
		}

		ctx, cancel := storageContext(c)
		defer cancel()

		med, err := service.CreateMedication(ctx, app.MedicationRepo(), user, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save medication")
			return
		}
		HandleSuccess(c, app.Logger(), 201, med, nil)
	}
}

func PatchMedicationTaken(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)
		ctx, cancel := storageContext(c)
		defer cancel()

		med, err := service.ToggleMedicationTaken(ctx, app.MedicationRepo(), user, c.Param("id"))
		if err != nil {
			HandleStorageError(c, app.Logger(), err, "Medication not found", "Failed to update medication")
			return
		}
		HandleSuccess(c, app.Logger(), 200, med, nil)
	}
}

func DeleteMedication(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)
		ctx, cancel := storageContext(c)
		defer cancel()

		if err := service.DeleteMedication(ctx, app.MedicationRepo(), user, c.Param("id")); err != nil {
			HandleStorageError(c, app.Logger(), err, "Medication not found", "Failed to delete medication")
			return
		}
		HandleSuccess(c, app.Logger(), 200, nil, map[string]any{"message": "Medication deleted successfully"})
	}
}
