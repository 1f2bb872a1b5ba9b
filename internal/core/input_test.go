package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.Len() != 0 {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	f.Set(ActionJump)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}

	got := f.Actions()
	if len(got) != 2 || got[0] != ActionLeft || got[1] != ActionJump {
		t.Errorf("Actions() = %v, expected [Left Jump]", got)
	}

	copied := f
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop all actions")
	}
	if !copied.Has(ActionLeft) {
		t.Error("a copied frame should not change when the original is cleared")
	}
}

func TestInputFrameIgnoresInvalid(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	f.Set(Action(42))
	if f.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", f.Len())
	}
	if f.Has(Action(42)) {
		t.Error("unknown action should never be reported")
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
	if ActionPause.String() != "Pause" {
		t.Errorf("ActionPause.String() = %q", ActionPause.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestDeltaTime(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).DeltaTime(); got != 0.02 {
		t.Errorf("DeltaTime() = %f, expected 0.02", got)
	}
	if got := (RuntimeConfig{}).DeltaTime(); got != 1.0/60.0 {
		t.Errorf("zero tick rate should fall back to 60Hz, got %f", got)
	}
}

func TestRuntimeConfigNormalize(t *testing.T) {
	before := time.Now().UnixNano()
	cfg := RuntimeConfig{ScreenW: 80, ScreenH: 24}.Normalize()

	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Seed < before {
		t.Errorf("Seed = %d, expected a time-based seed", cfg.Seed)
	}

	kept := RuntimeConfig{TickRate: 30, Seed: 7}.Normalize()
	if kept.TickRate != 30 || kept.Seed != 7 {
		t.Errorf("Normalize changed explicit values: %+v", kept)
	}
}
