package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "kiosk_quote/internal/adapter/http/dto/request"
	response "kiosk_quote/internal/adapter/http/dto/response"
	"kiosk_quote/internal/domain/pricing"
	"kiosk_quote/internal/domain/wizard"
	"kiosk_quote/internal/usecase"
	"kiosk_quote/pkg"

	"github.com/gin-gonic/gin"
)

const sessionIDParam = "session_id"

var (
	errInvalidKioskPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// KioskHandler exposes the quote wizard to the kiosk front-end. Every session
// route answers with the session as it stands after the call, including on
// failure, so the screen can always re-render.
type KioskHandler struct {
	usecase usecase.IKioskUseCase
}

func NewKioskHandler(uc usecase.IKioskUseCase) *KioskHandler {
	return &KioskHandler{usecase: uc}
}

// Catalog godoc
// @Summary      Kiosk catalog
// @Description  Room presets, tiers, materials, appointment slots and the deposit credit.
// @Tags         kiosk
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /kiosk/catalog [get]
func (h *KioskHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Catalog()))
}

// PreviewEstimate godoc
// @Summary      Price a configuration
// @Description  Prices a room and material selection without starting a session.
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimatePreviewRequest  true  "Configuration"
// @Success      200   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /kiosk/estimates [post]
func (h *KioskHandler) PreviewEstimate(c *gin.Context) {
	var payload request.EstimatePreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := errInvalidKioskPayload.WithFields("preset_id", "dimensions")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	res, err := h.usecase.Preview(c.Request.Context(), in)
	if err != nil {
		appErr := mapKioskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(res))
}

// StartSession godoc
// @Summary      Start a kiosk session
// @Description  Opens a new wizard session on the welcome step.
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        body  body      request.StartSessionRequest  false  "Terminal"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /kiosk/sessions [post]
func (h *KioskHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeBindError(c, err)
			return
		}
	}
	v, err := h.usecase.StartSession(c.Request.Context(), payload.TerminalID)
	if err != nil {
		writeSessionError(c, v, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionView(v))
}

// GetSession godoc
// @Summary      Get a kiosk session
// @Tags         kiosk
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.SessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /kiosk/sessions/{session_id} [get]
func (h *KioskHandler) GetSession(c *gin.Context) {
	v, err := h.usecase.GetSession(c.Request.Context(), c.Param(sessionIDParam))
	h.respond(c, v, err)
}

// UpdateCustomer godoc
// @Summary      Edit customer contact details
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                   true  "Session ID"
// @Param        body        body      request.CustomerRequest  true  "Customer"
// @Success      200         {object}  response.SessionResponse
// @Failure      409         {object}  response.ErrorResponse
// @Failure      422         {object}  response.ErrorResponse
// @Router       /kiosk/sessions/{session_id}/customer [patch]
func (h *KioskHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	h.applyFields(c, payload.ToEvents())
}

// UpdateSize godoc
// @Summary      Choose kitchen size
// @Description  PRESET mode copies the preset measurements; MANUAL mode accepts dimensions and linear feet.
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        session_id  path      string               true  "Session ID"
// @Param        body        body      request.SizeRequest  true  "Size"
// @Success      200         {object}  response.SessionResponse
// @Failure      409         {object}  response.ErrorResponse
// @Failure      422         {object}  response.ErrorResponse
// @Router       /kiosk/sessions/{session_id}/size [patch]
func (h *KioskHandler) UpdateSize(c *gin.Context) {
	var payload request.SizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	h.applyFields(c, payload.ToEvents())
}

// UpdateMaterials godoc
// @Summary      Choose tier and materials
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                    true  "Session ID"
// @Param        body        body      request.MaterialsRequest  true  "Materials"
// @Success      200         {object}  response.SessionResponse
// @Failure      409         {object}  response.ErrorResponse
// @Failure      422         {object}  response.ErrorResponse
// @Router       /kiosk/sessions/{session_id}/materials [patch]
func (h *KioskHandler) UpdateMaterials(c *gin.Context) {
	var payload request.MaterialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	events, err := payload.ToEvents()
	if err != nil {
		appErr := errInvalidKioskPayload.WithFields("tier", "countertop_material", "flooring_material")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.applyFields(c, events)
}

// UpdateAddOns godoc
// @Summary      Set add-ons
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                 true  "Session ID"
// @Param        body        body      request.AddOnsRequest  true  "Add-ons"
// @Success      200         {object}  response.SessionResponse
// @Failure      409         {object}  response.ErrorResponse
// @Failure      422         {object}  response.ErrorResponse
// @Router       /kiosk/sessions/{session_id}/add-ons [patch]
func (h *KioskHandler) UpdateAddOns(c *gin.Context) {
	var payload request.AddOnsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	h.applyFields(c, payload.ToEvents())
}

// UpdateAppointment godoc
// @Summary      Pick an appointment slot
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                      true  "Session ID"
// @Param        body        body      request.AppointmentRequest  true  "Slot"
// @Success      200         {object}  response.SessionResponse
// @Failure      409         {object}  response.ErrorResponse
// @Failure      422         {object}  response.ErrorResponse
// @Router       /kiosk/sessions/{session_id}/appointment [patch]
func (h *KioskHandler) UpdateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	h.applyFields(c, payload.ToEvents())
}

// Continue godoc
// @Summary      Advance the wizard
// @Description  On the payment step this charges the deposit and books the appointment.
// @Tags         kiosk
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.SessionResponse
// @Failure      402         {object}  response.ErrorResponse
// @Failure      409         {object}  response.ErrorResponse
// @Failure      422         {object}  response.ErrorResponse
// @Failure      503         {object}  response.ErrorResponse
// @Router       /kiosk/sessions/{session_id}/continue [post]
func (h *KioskHandler) Continue(c *gin.Context) {
	v, err := h.usecase.Continue(c.Request.Context(), c.Param(sessionIDParam))
	h.respond(c, v, err)
}

// Back godoc
// @Summary      Go back one step
// @Tags         kiosk
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.SessionResponse
// @Failure      409         {object}  response.ErrorResponse
// @Router       /kiosk/sessions/{session_id}/back [post]
func (h *KioskHandler) Back(c *gin.Context) {
	v, err := h.usecase.Back(c.Request.Context(), c.Param(sessionIDParam))
	h.respond(c, v, err)
}

// Reset godoc
// @Summary      Start over for the next customer
// @Tags         kiosk
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.SessionResponse
// @Failure      409         {object}  response.ErrorResponse
// @Router       /kiosk/sessions/{session_id}/reset [post]
func (h *KioskHandler) Reset(c *gin.Context) {
	v, err := h.usecase.Reset(c.Request.Context(), c.Param(sessionIDParam))
	h.respond(c, v, err)
}

// QuotePDF godoc
// @Summary      Printable quote
// @Tags         kiosk
// @Produce      application/pdf
// @Param        session_id  path  string  true  "Session ID"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /kiosk/sessions/{session_id}/quote.pdf [get]
func (h *KioskHandler) QuotePDF(c *gin.Context) {
	id := c.Param(sessionIDParam)
	b, err := h.usecase.QuotePDF(c.Request.Context(), id)
	if err != nil {
		appErr := mapKioskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "kitchen-quote-"+id+".pdf"))
	c.Data(http.StatusOK, "application/pdf", b)
}

func (h *KioskHandler) applyFields(c *gin.Context, events []wizard.Event) {
	v, err := h.usecase.ApplyFields(c.Request.Context(), c.Param(sessionIDParam), events...)
	h.respond(c, v, err)
}

func (h *KioskHandler) respond(c *gin.Context, v usecase.SessionView, err error) {
	if err != nil {
		writeSessionError(c, v, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(v))
}

func writeSessionError(c *gin.Context, v usecase.SessionView, err error) {
	appErr := mapKioskError(err)
	body := response.ErrorResponse{HTTPError: appErr.ToHTTPError()}
	if v.SessionID != "" {
		s := response.FromSessionView(v)
		body.Session = &s
	}
	c.JSON(appErr.HTTPStatus, body)
}

func writeBindError(c *gin.Context, err error) {
	appErr := errInvalidKioskPayload
	if fields := request.FieldNames(err); len(fields) > 0 {
		appErr = appErr.WithFields(fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapKioskError(err error) *pkg.AppError {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Message, err, http.StatusUnprocessableEntity).WithFields(verr.Fields...)
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrNotAFieldEvent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Kiosk session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransitionInFlight):
		return pkg.NewDomainErrorSimple("TRANSITION_IN_FLIGHT", "Another action is still in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyBooked):
		return pkg.NewDomainErrorSimple("ALREADY_BOOKED", "This quote is already booked", http.StatusConflict)
	case errors.Is(err, wizard.ErrInvalidTransition), errors.Is(err, wizard.ErrFinalizationRequired):
		return pkg.NewDomainError("STATE_CONFLICT", "Action not available on this step", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositDeclined):
		return pkg.NewDomainError("DEPOSIT_DECLINED", "The deposit payment was declined", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPersistence), errors.Is(err, usecase.ErrFinalization), errors.Is(err, usecase.ErrPDFUnavailable):
		return pkg.NewDomainError("DEPENDENCY_ERROR", "A required service is unavailable, please try again", err, http.StatusServiceUnavailable)
	case errors.Is(err, pricing.ErrInvalidDimensions), errors.Is(err, pricing.ErrInvalidLinearFeet),
		errors.Is(err, pricing.ErrInvalidTier), errors.Is(err, pricing.ErrInvalidMaterial), errors.Is(err, pricing.ErrInvalidAddOns),
		errors.Is(err, pricing.ErrEstimateOverflow):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
