package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appconfig "kiosk_quote/internal/config"
	"kiosk_quote/internal/usecase/interfaces"
	"kiosk_quote/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway charges kiosk deposits through Mercado Pago. In mock mode
// every payment is approved locally and the provider is never called.
type MercadoPagoGateway struct {
	client   paymentCreator
	mockMode bool
	log      *logger.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig, log *logger.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = logger.Nop()
	}
	g := &MercadoPagoGateway{log: log, now: func() time.Time { return time.Now().UTC() }}
	ctx := context.Background()
	if cfg.Mock {
		log.Info(ctx, "[payment][gateway] mock mode enabled")
		g.mockMode = true
		return g, nil
	}

	if cfg.MercadoPagoToken == "" {
		log.Warn(ctx, "[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.MercadoPagoToken)
	if err != nil {
		log.Error(ctx, "[payment][gateway] failed creating sdk config", err)
		return nil, err
	}
	log.Info(ctx, "[payment][gateway] Mercado Pago client initialized")
	g.client = payment.NewClient(sdkCfg)
	return g, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(ctx, requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info(ctx, fmt.Sprintf("[payment][gateway] create start payload_len=%d", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Error(ctx, "[payment][gateway] payload unmarshal failed", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] sdk create failed", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] response marshal failed", err)
		return "", "", nil, err
	}
	g.log.Info(ctx, fmt.Sprintf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status))

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockPayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	g.log.Info(ctx, fmt.Sprintf("[payment][gateway] mock create start payload_len=%d", len(requestPayload)))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now.Format(time.RFC3339Nano)
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] mock response marshal failed", err)
		return "", "", nil, err
	}

	g.log.Info(ctx, fmt.Sprintf("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id))
	return id, "approved", b, nil
}
