package config

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"table format", Config{Format: "table"}, false},
		{"bed format", Config{Format: "bed"}, false},
		{"csv format", Config{Format: "csv"}, false},
		{"json format", Config{Format: "json"}, false},
		{"unknown format", Config{Format: "gff"}, true},
		{"empty format", Config{}, true},
		{"negative min-length", Config{Format: "table", MinLength: -1}, true},
		{"positive min-length", Config{Format: "table", MinLength: 200}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_defaults(t *testing.T) {
	c := New()
	if c.Format != "table" {
		t.Errorf("New().Format = %q, want table", c.Format)
	}
	if c.MinLength != 0 {
		t.Errorf("New().MinLength = %d, want 0", c.MinLength)
	}
	if c.Verbose {
		t.Error("New().Verbose = true, want false")
	}
}
