package main

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate, got: %v", err)
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log-format")
	}
}

func TestValidateAcceptsEachLogFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "color"} {
		cfg := DefaultConfig()
		cfg.LogFormat = format
		if err := cfg.Validate(); err != nil {
			t.Fatalf("log-format %q should validate, got: %v", format, err)
		}
	}
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = cfg.Authorities + 1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for threshold exceeding authorities")
	}
}
