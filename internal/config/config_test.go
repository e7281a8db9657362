package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("KIOSK_DYNAMODB_REGION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Port != "8080" || cfg.App.StoreBackend != StoreBackendDynamoDB {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if cfg.DynamoDB.Region != "us-east-1" || cfg.DynamoDB.QuoteTable != "quote_drafts" {
		t.Fatalf("unexpected dynamodb config: %+v", cfg.DynamoDB)
	}
	if !cfg.Payments.Mock {
		t.Fatalf("expected payment mock enabled by default")
	}
	if cfg.Redis.LockTTL != 30*time.Second || cfg.Kiosk.SessionTTL != 2*time.Hour {
		t.Fatalf("unexpected durations: %+v %+v", cfg.Redis, cfg.Kiosk)
	}
	if !cfg.App.IsDev() || cfg.App.IsProd() {
		t.Fatalf("expected dev env")
	}
}

func TestLoadLegacyEnv(t *testing.T) {
	t.Setenv("KIOSK_DYNAMODB_REGION", "")
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("KIOSK_PAYMENT_MOCK", "false")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DynamoDB.Region != "sa-east-1" || cfg.DynamoDB.Endpoint != "http://dynamodb:8000" {
		t.Fatalf("legacy dynamodb env ignored: %+v", cfg.DynamoDB)
	}
	if cfg.Payments.Mock || cfg.Payments.MercadoPagoToken != "TEST-123" {
		t.Fatalf("legacy payment env ignored: %+v", cfg.Payments)
	}
}

func TestLoadSlotsAndValidation(t *testing.T) {
	t.Setenv("KIOSK_APPOINTMENT_SLOTS", "Mon 9 AM,Mon 1 PM")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Kiosk.AppointmentSlots) != 2 || cfg.Kiosk.AppointmentSlots[1] != "Mon 1 PM" {
		t.Fatalf("unexpected slots: %v", cfg.Kiosk.AppointmentSlots)
	}

	t.Setenv("KIOSK_STORE_BACKEND", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected invalid store backend error")
	}

	t.Setenv("KIOSK_STORE_BACKEND", "memory")
	t.Setenv("KIOSK_PAYMENT_MOCK", "false")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
	t.Setenv("KIOSK_MERCADOPAGO_ACCESS_TOKEN", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected missing token error")
	}
}
