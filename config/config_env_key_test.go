package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"razorpay": map[string]any{
			"keySecret": "",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"upload": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "RAZORPAY_KEYSECRET", want: "razorpay.keySecret"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "UPLOAD_BUCKETURL", want: "upload.bucketUrl"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Tokens.Welcome != 150 {
		t.Fatalf("Tokens.Welcome = %d, want 150", cfg.Tokens.Welcome)
	}
	if cfg.Upload.MaxFiles != 10 {
		t.Fatalf("Upload.MaxFiles = %d, want 10", cfg.Upload.MaxFiles)
	}
	if cfg.Upload.MaxFileBytes != 10<<20 {
		t.Fatalf("Upload.MaxFileBytes = %d, want %d", cfg.Upload.MaxFileBytes, 10<<20)
	}
	if cfg.Session.MaxAge.Hours() != 168 {
		t.Fatalf("Session.MaxAge = %s, want 168h", cfg.Session.MaxAge)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Tokens.Welcome = 500
	cfg.Upload.MaxFiles = 2
	applyDefaults(cfg)

	if cfg.Tokens.Welcome != 500 {
		t.Fatalf("Tokens.Welcome = %d, want 500", cfg.Tokens.Welcome)
	}
	if cfg.Upload.MaxFiles != 2 {
		t.Fatalf("Upload.MaxFiles = %d, want 2", cfg.Upload.MaxFiles)
	}
}
