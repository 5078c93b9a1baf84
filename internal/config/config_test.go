package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DATA_DIR", "CORS_ALLOWED_ORIGINS", "MAX_UPLOAD_BYTES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.HTTPPort != "3000" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.MaxUploadBytes != 10*1024*1024 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DATA_DIR", "/tmp/stock")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.HTTPPort != "8080" || cfg.DataDir != "/tmp/stock" || cfg.MaxUploadBytes != 1048576 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadMaxUploadInvalido(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "diez")

	if _, err := Load(); err == nil {
		t.Fatal("se esperaba error por MAX_UPLOAD_BYTES inválido")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"válida", Config{HTTPPort: "3000", DataDir: "./data", MaxUploadBytes: 1}, false},
		{"puerto vacío", Config{DataDir: "./data", MaxUploadBytes: 1}, true},
		{"puerto no numérico", Config{HTTPPort: "abc", DataDir: "./data", MaxUploadBytes: 1}, true},
		{"sin directorio", Config{HTTPPort: "3000", MaxUploadBytes: 1}, true},
		{"límite cero", Config{HTTPPort: "3000", DataDir: "./data"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
