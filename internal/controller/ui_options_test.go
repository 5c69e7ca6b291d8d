package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithViewMode()(cfg)
	if cfg.mode != ModeView {
		t.Fatalf("WithViewMode() mode = %v, want %v", cfg.mode, ModeView)
	}

	WithCheckMode()(cfg)
	if cfg.mode != ModeCheck {
		t.Fatalf("WithCheckMode() mode = %v, want %v", cfg.mode, ModeCheck)
	}
}

func TestNewStartConfig_LastOptionWins(t *testing.T) {
	if cfg := newStartConfig(nil); cfg.mode != ModeCheck {
		t.Fatalf("newStartConfig(nil) mode = %v, want %v", cfg.mode, ModeCheck)
	}

	cfg := newStartConfig([]StartOption{WithCheckMode(), WithViewMode()})
	if cfg.mode != ModeView {
		t.Fatalf("newStartConfig() mode = %v, want %v", cfg.mode, ModeView)
	}
}
