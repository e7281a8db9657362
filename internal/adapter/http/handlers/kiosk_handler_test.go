package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	request "kiosk_quote/internal/adapter/http/dto/request"
	"kiosk_quote/internal/adapter/http/handlers/mocks"
	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/pricing"
	"kiosk_quote/internal/domain/wizard"
	"kiosk_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newKioskRouter(t *testing.T) (*gin.Engine, *mocks.MockIKioskUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := request.RegisterBindingValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIKioskUseCase(ctrl)
	h := NewKioskHandler(uc)

	r := gin.New()
	k := r.Group("/v1/kiosk")
	k.GET("/catalog", h.Catalog)
	k.POST("/estimates", h.PreviewEstimate)
	k.POST("/sessions", h.StartSession)
	k.GET("/sessions/:session_id", h.GetSession)
	k.PATCH("/sessions/:session_id/customer", h.UpdateCustomer)
	k.PATCH("/sessions/:session_id/size", h.UpdateSize)
	k.PATCH("/sessions/:session_id/materials", h.UpdateMaterials)
	k.PATCH("/sessions/:session_id/add-ons", h.UpdateAddOns)
	k.PATCH("/sessions/:session_id/appointment", h.UpdateAppointment)
	k.POST("/sessions/:session_id/continue", h.Continue)
	k.POST("/sessions/:session_id/back", h.Back)
	k.POST("/sessions/:session_id/reset", h.Reset)
	k.GET("/sessions/:session_id/quote.pdf", h.QuotePDF)
	return r, uc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return m
}

func sessionAt(step wizard.Step) usecase.SessionView {
	return usecase.SessionView{SessionID: "sess-1", Step: step, Draft: entities.QuoteDraft{Status: entities.QuoteStatusDraft}}
}

func TestKioskHandler_StartSession(t *testing.T) {
	t.Run("with terminal", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().StartSession(gomock.Any(), "lobby-2").Return(sessionAt(wizard.StepWelcome), nil)

		w := do(r, http.MethodPost, "/v1/kiosk/sessions", `{"terminal_id":"lobby-2"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if m := decode(t, w); m["session_id"] != "sess-1" || m["step"] != "welcome" {
			t.Fatalf("unexpected body: %v", m)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().StartSession(gomock.Any(), "").Return(sessionAt(wizard.StepWelcome), nil)

		w := do(r, http.MethodPost, "/v1/kiosk/sessions", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newKioskRouter(t)
		w := do(r, http.MethodPost, "/v1/kiosk/sessions", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestKioskHandler_GetSession(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().GetSession(gomock.Any(), "sess-1").Return(sessionAt(wizard.StepKitchen), nil)

		w := do(r, http.MethodGet, "/v1/kiosk/sessions/sess-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if m := decode(t, w); m["step_index"] != float64(2) {
			t.Fatalf("unexpected body: %v", m)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().GetSession(gomock.Any(), "nope").Return(usecase.SessionView{}, usecase.ErrSessionNotFound)

		w := do(r, http.MethodGet, "/v1/kiosk/sessions/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		m := decode(t, w)
		if m["code"] != "SESSION_NOT_FOUND" {
			t.Fatalf("unexpected body: %v", m)
		}
		if _, ok := m["session"]; ok {
			t.Fatalf("no session expected: %v", m)
		}
	})
}

func TestKioskHandler_UpdateCustomer(t *testing.T) {
	t.Run("applies edit", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		want := wizard.SetCustomer{Customer: entities.Customer{Name: "Ana", Phone: "555-0100", Email: "ana@example.com"}}
		uc.EXPECT().ApplyFields(gomock.Any(), "sess-1", want).Return(sessionAt(wizard.StepCustomer), nil)

		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/customer", `{"name":"Ana","phone":"555-0100","email":"ana@example.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("wrong step conflicts", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		err := fmt.Errorf("%w: set_customer not allowed on kitchen", wizard.ErrInvalidTransition)
		uc.EXPECT().ApplyFields(gomock.Any(), "sess-1", gomock.Any()).Return(sessionAt(wizard.StepKitchen), err)

		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/customer", `{"name":"Ana"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if m := decode(t, w); m["code"] != "STATE_CONFLICT" {
			t.Fatalf("unexpected body: %v", m)
		}
	})
}

func TestKioskHandler_UpdateSize(t *testing.T) {
	t.Run("manual with dimensions", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().ApplyFields(gomock.Any(), "sess-1",
			wizard.SelectSizeMode{Mode: entities.SizeModeManual},
			wizard.SetManualSize{
				Dimensions: entities.Dimensions{LengthFt: 11, WidthFt: 10},
				LinearFeet: entities.LinearFeet{CabinetLF: 22, CountertopLF: 14},
			},
		).Return(sessionAt(wizard.StepKitchen), nil)

		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/size",
			`{"mode":"manual","dimensions":{"length_ft":11,"width_ft":10},"linear_feet":{"cabinet_lf":22,"countertop_lf":14}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("manual with dimensions only keeps linear feet", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().ApplyFields(gomock.Any(), "sess-1",
			wizard.SelectSizeMode{Mode: entities.SizeModeManual},
			wizard.SetManualDimensions{Dimensions: entities.Dimensions{LengthFt: 11, WidthFt: 9}},
		).Return(sessionAt(wizard.StepKitchen), nil)

		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/size",
			`{"mode":"MANUAL","dimensions":{"length_ft":11,"width_ft":9}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid mode is rejected before the wizard", func(t *testing.T) {
		r, _ := newKioskRouter(t)
		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/size", `{"mode":"ROUND"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		m := decode(t, w)
		if fields, _ := m["fields"].([]any); len(fields) != 1 || fields[0] != "mode" {
			t.Fatalf("unexpected fields: %v", m)
		}
	})

	t.Run("validation failure keeps session", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		verr := &wizard.ValidationError{Step: wizard.StepKitchen, Fields: []string{"dimensions"}, Message: "Enter the room length and width."}
		uc.EXPECT().ApplyFields(gomock.Any(), "sess-1", gomock.Any(), gomock.Any()).Return(sessionAt(wizard.StepKitchen), verr)

		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/size", `{"mode":"MANUAL","dimensions":{"length_ft":0,"width_ft":10}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		m := decode(t, w)
		if m["code"] != "VALIDATION_ERROR" || m["message"] != "Enter the room length and width." {
			t.Fatalf("unexpected body: %v", m)
		}
		if s, ok := m["session"].(map[string]any); !ok || s["step"] != "kitchen" {
			t.Fatalf("expected session in body: %v", m)
		}
	})
}

func TestKioskHandler_UpdateMaterials(t *testing.T) {
	t.Run("subset", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().ApplyFields(gomock.Any(), "sess-1",
			wizard.SetTier{Tier: entities.TierBest},
			wizard.SetCountertopMaterial{Material: entities.CountertopGranite},
		).Return(sessionAt(wizard.StepMaterials), nil)

		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/materials", `{"tier":"best","countertop_material":"GRANITE"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty", func(t *testing.T) {
		r, _ := newKioskRouter(t)
		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/materials", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		r, _ := newKioskRouter(t)
		w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/materials", `{"tier":"PLATINUM"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestKioskHandler_UpdateAddOnsAndAppointment(t *testing.T) {
	r, uc := newKioskRouter(t)
	uc.EXPECT().ApplyFields(gomock.Any(), "sess-1", wizard.SetAddOns{AddOns: entities.AddOns{PlumbingMoveCount: 2, IncludeDemo: true}}).
		Return(sessionAt(wizard.StepMaterials), nil)
	uc.EXPECT().ApplyFields(gomock.Any(), "sess-1", wizard.SelectAppointmentSlot{Slot: "Monday 9:00 AM - 11:00 AM"}).
		Return(sessionAt(wizard.StepAppointment), nil)

	if w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/add-ons", `{"plumbing_move_count":2,"include_demo":true}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/appointment", `{"slot":"Monday 9:00 AM - 11:00 AM"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodPatch, "/v1/kiosk/sessions/sess-1/appointment", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestKioskHandler_Continue(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "success", status: http.StatusOK},
		{name: "in flight", err: usecase.ErrTransitionInFlight, status: http.StatusConflict, code: "TRANSITION_IN_FLIGHT"},
		{name: "already booked", err: usecase.ErrAlreadyBooked, status: http.StatusConflict, code: "ALREADY_BOOKED"},
		{name: "persistence", err: fmt.Errorf("%w: %w", usecase.ErrPersistence, errors.New("timeout")), status: http.StatusServiceUnavailable, code: "DEPENDENCY_ERROR"},
		{name: "declined", err: fmt.Errorf("%w: %w", usecase.ErrFinalization, usecase.ErrDepositDeclined), status: http.StatusPaymentRequired, code: "DEPOSIT_DECLINED"},
		{name: "finalization", err: fmt.Errorf("%w: lock", usecase.ErrFinalization), status: http.StatusServiceUnavailable, code: "DEPENDENCY_ERROR"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newKioskRouter(t)
			uc.EXPECT().Continue(gomock.Any(), "sess-1").Return(sessionAt(wizard.StepPayment), tc.err)

			w := do(r, http.MethodPost, "/v1/kiosk/sessions/sess-1/continue", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			m := decode(t, w)
			if tc.code == "" {
				if m["step"] != "payment" {
					t.Fatalf("unexpected body: %v", m)
				}
				return
			}
			if m["code"] != tc.code {
				t.Fatalf("expected %s, got %v", tc.code, m["code"])
			}
		})
	}
}

func TestKioskHandler_BackAndReset(t *testing.T) {
	r, uc := newKioskRouter(t)
	uc.EXPECT().Back(gomock.Any(), "sess-1").Return(sessionAt(wizard.StepKitchen), nil)
	uc.EXPECT().Reset(gomock.Any(), "sess-1").Return(sessionAt(wizard.StepKitchen), fmt.Errorf("%w: reset not allowed on kitchen", wizard.ErrInvalidTransition))

	if w := do(r, http.MethodPost, "/v1/kiosk/sessions/sess-1/back", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/v1/kiosk/sessions/sess-1/reset", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestKioskHandler_QuotePDF(t *testing.T) {
	t.Run("renders", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().QuotePDF(gomock.Any(), "sess-1").Return([]byte("%PDF-1.3"), nil)

		w := do(r, http.MethodGet, "/v1/kiosk/sessions/sess-1/quote.pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().QuotePDF(gomock.Any(), "sess-1").Return(nil, usecase.ErrPDFUnavailable)

		w := do(r, http.MethodGet, "/v1/kiosk/sessions/sess-1/quote.pdf", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestKioskHandler_CatalogAndPreview(t *testing.T) {
	t.Run("catalog", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().Catalog().Return(usecase.Catalog{Tiers: entities.Tiers, DepositCredit: 500})

		w := do(r, http.MethodGet, "/v1/kiosk/catalog", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if m := decode(t, w); m["deposit_credit"] != float64(500) {
			t.Fatalf("unexpected body: %v", m)
		}
	})

	t.Run("preview", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in pricing.Input) (pricing.Result, error) {
			if in.Dimensions.LengthFt != 12 || in.Tier != entities.TierBetter {
				t.Fatalf("unexpected input: %+v", in)
			}
			return pricing.Result{Estimate: entities.Estimate{Low: 15520, High: 18210, Subtotal: 16860, DepositCredit: 500}}, nil
		})

		w := do(r, http.MethodPost, "/v1/kiosk/estimates",
			`{"preset_id":"MEDIUM","tier":"BETTER","countertop_material":"QUARTZ","flooring_material":"LVP","add_ons":{"plumbing_move_count":1,"include_demo":true}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		est := decode(t, w)["estimate"].(map[string]any)
		if est["subtotal"] != float64(16860) {
			t.Fatalf("unexpected estimate: %v", est)
		}
	})

	t.Run("preview without size", func(t *testing.T) {
		r, _ := newKioskRouter(t)
		w := do(r, http.MethodPost, "/v1/kiosk/estimates", `{"tier":"GOOD","countertop_material":"QUARTZ","flooring_material":"LVP"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("preview rejects bad dimensions", func(t *testing.T) {
		r, uc := newKioskRouter(t)
		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(pricing.Result{}, pricing.ErrInvalidDimensions)

		w := do(r, http.MethodPost, "/v1/kiosk/estimates", `{"dimensions":{"length_ft":-1,"width_ft":3},"tier":"GOOD","countertop_material":"QUARTZ","flooring_material":"LVP"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)
	if w := do(r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
