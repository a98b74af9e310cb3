package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage by default, got %q", cfg.StorageDriver)
	}
	if cfg.ProviderDriver != ProviderNone {
		t.Fatalf("expected no provider by default, got %q", cfg.ProviderDriver)
	}
	if cfg.SyncEnabled {
		t.Fatalf("expected sync disabled by default")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}
	if !cfg.ProviderCircuit.Enabled || cfg.ProviderCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected provider circuit defaults: %+v", cfg.ProviderCircuit)
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel.String())
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `other=1, uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("invalid driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORAGE_DRIVER")
		}
	})

	t.Run("postgres is case insensitive", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", " Postgres ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StoragePostgres {
			t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
		}
	})
}

func TestLoad_ProviderConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("reference requires base url", func(t *testing.T) {
		t.Setenv("PROVIDER_DRIVER", ProviderReference)
		t.Setenv("PROVIDER_BASE_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when PROVIDER_DRIVER=reference without PROVIDER_BASE_URL")
		}
	})

	t.Run("reference with values", func(t *testing.T) {
		t.Setenv("PROVIDER_DRIVER", ProviderReference)
		t.Setenv("PROVIDER_BASE_URL", "https://reference.example.com/api")
		t.Setenv("PROVIDER_TIMEOUT", "3s")
		t.Setenv("PROVIDER_MAX_RETRIES", "4")
		t.Setenv("PROVIDER_CIRCUIT_FAILURE_COUNT", "7")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ProviderTimeout != 3*time.Second || cfg.ProviderMaxRetries != 4 {
			t.Fatalf("unexpected provider config: %+v", cfg)
		}
		if cfg.ProviderCircuit.FailureThreshold != 7 {
			t.Fatalf("unexpected circuit threshold: %d", cfg.ProviderCircuit.FailureThreshold)
		}
	})

	t.Run("negative retries", func(t *testing.T) {
		t.Setenv("PROVIDER_DRIVER", ProviderSnapshot)
		t.Setenv("PROVIDER_MAX_RETRIES", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative PROVIDER_MAX_RETRIES")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("PROVIDER_DRIVER", "ftp")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown PROVIDER_DRIVER")
		}
	})
}

func TestLoad_SyncConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("enabled requires provider", func(t *testing.T) {
		t.Setenv("SYNC_ENABLED", "true")
		t.Setenv("PROVIDER_DRIVER", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when SYNC_ENABLED=true without provider")
		}
	})

	t.Run("boot sync requires enabled", func(t *testing.T) {
		t.Setenv("SYNC_ENABLED", "false")
		t.Setenv("SYNC_ON_BOOT", "true")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when SYNC_ON_BOOT=true with sync disabled")
		}
	})

	t.Run("workers out of range", func(t *testing.T) {
		t.Setenv("SYNC_ON_BOOT", "")
		t.Setenv("SYNC_MAX_WORKERS", "32")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for SYNC_MAX_WORKERS=32")
		}
	})

	t.Run("snapshot sync", func(t *testing.T) {
		t.Setenv("SYNC_ENABLED", "true")
		t.Setenv("SYNC_ON_BOOT", "true")
		t.Setenv("SYNC_MAX_WORKERS", "8")
		t.Setenv("PROVIDER_DRIVER", ProviderSnapshot)
		t.Setenv("SNAPSHOT_DIR", "/srv/snapshot")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SyncMaxWorkers != 8 || cfg.SnapshotDir != "/srv/snapshot" {
			t.Fatalf("unexpected sync config: workers=%d dir=%q", cfg.SyncMaxWorkers, cfg.SnapshotDir)
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "league-reference-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "league-reference-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}
