package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"dbName":   "weavewhisper",
			"userName": "user",
		},
		"marketplace": map[string]any{
			"returnWindowDays": 15,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "MARKETPLACE_RETURNWINDOWDAYS", want: "marketplace.returnWindowDays"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestMarketplaceConfig_ReturnWindow(t *testing.T) {
	cfg := &MarketplaceConfig{ReturnWindowDays: 15}

	if got, want := cfg.ReturnWindow().Hours(), float64(15*24); got != want {
		t.Fatalf("ReturnWindow() = %v hours, want %v", got, want)
	}
}
