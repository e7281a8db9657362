package routes

import (
	"kiosk_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathKiosk    = "/kiosk"
	PathSessions = "/sessions"
	PathSession  = "/:session_id"
)

func addKioskRoutes(rg *gin.RouterGroup, kioskHandler *handlers.KioskHandler) {
	kiosk := rg.Group(PathKiosk)
	{
		kiosk.GET("/catalog", kioskHandler.Catalog)
		kiosk.POST("/estimates", kioskHandler.PreviewEstimate)
	}

	sessions := kiosk.Group(PathSessions)
	{
		sessions.POST("", kioskHandler.StartSession)
		sessions.GET(PathSession, kioskHandler.GetSession)

		// Field edits; the wizard decides which step accepts each one.
		sessions.PATCH(PathSession+"/customer", kioskHandler.UpdateCustomer)
		sessions.PATCH(PathSession+"/size", kioskHandler.UpdateSize)
		sessions.PATCH(PathSession+"/materials", kioskHandler.UpdateMaterials)
		sessions.PATCH(PathSession+"/add-ons", kioskHandler.UpdateAddOns)
		sessions.PATCH(PathSession+"/appointment", kioskHandler.UpdateAppointment)

		sessions.POST(PathSession+"/continue", kioskHandler.Continue)
		sessions.POST(PathSession+"/back", kioskHandler.Back)
		sessions.POST(PathSession+"/reset", kioskHandler.Reset)
		sessions.GET(PathSession+"/quote.pdf", kioskHandler.QuotePDF)
	}
}
