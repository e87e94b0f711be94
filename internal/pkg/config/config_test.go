package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %s", cfg.Env)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected default token ttl 1h, got %s", cfg.TokenTTL)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Fatalf("unexpected default mongo uri: %s", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "product_catalog" {
		t.Fatalf("unexpected default mongo db: %s", cfg.Mongo.Database)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("MONGO_DB", "catalog_test")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Fatalf("expected jwt secret from env, got %s", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected token ttl 30m, got %s", cfg.TokenTTL)
	}
	if cfg.Mongo.Database != "catalog_test" {
		t.Fatalf("expected mongo db catalog_test, got %s", cfg.Mongo.Database)
	}
}
