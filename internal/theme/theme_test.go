package theme

import (
	"path/filepath"
	"testing"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/kv"
)

func newTestStore(t *testing.T) kv.Store {
	t.Helper()
	store := kv.NewJSONStore(filepath.Join(t.TempDir(), "habito.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return store
}

func TestLoadDefault(t *testing.T) {
	store := newTestStore(t)
	c := Load(store)
	if c != Default() {
		t.Errorf("fresh store should load the default palette, got %+v", c)
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	want := Colors{Primary: "#ff0000", PrimaryDark: "#cc0000", Accent: "#00ff00"}
	if err := Save(store, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got := Load(store); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveRejectsBadHex(t *testing.T) {
	store := newTestStore(t)
	err := Save(store, Colors{Primary: "red", PrimaryDark: "#cc0000", Accent: "#00ff00"})
	if err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestLoadLegacyRecordFillsPrimaryDark(t *testing.T) {
	store := newTestStore(t)
	// Pre-primaryDark record: only primary and accent.
	if err := store.Set(constants.ThemeKey, `{"primary":"#8b5cf6","accent":"#d946ef"}`); err != nil {
		t.Fatal(err)
	}
	c := Load(store)
	if c.PrimaryDark != Darken("#8b5cf6", 15) {
		t.Errorf("legacy primaryDark = %q, want darkened primary", c.PrimaryDark)
	}
	if c.Primary != "#8b5cf6" || c.Accent != "#d946ef" {
		t.Errorf("legacy fields mangled: %+v", c)
	}
}

func TestLoadCorruptFallsBackToDefault(t *testing.T) {
	store := newTestStore(t)
	if err := store.Set(constants.ThemeKey, "{broken"); err != nil {
		t.Fatal(err)
	}
	if got := Load(store); got != Default() {
		t.Errorf("corrupt theme should fall back to default, got %+v", got)
	}
}

func TestReset(t *testing.T) {
	store := newTestStore(t)
	if err := Save(store, Colors{Primary: "#ff0000", PrimaryDark: "#cc0000", Accent: "#00ff00"}); err != nil {
		t.Fatal(err)
	}
	if err := Reset(store); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if got := Load(store); got != Default() {
		t.Errorf("after reset: %+v", got)
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
		wantErr bool
	}{
		{"#8b5cf6", 0x8b, 0x5c, 0xf6, false},
		{"8b5cf6", 0x8b, 0x5c, 0xf6, false},
		{"#fff", 0xff, 0xff, 0xff, false},
		{"#f0c", 0xff, 0x00, 0xcc, false},
		{"#12345", 0, 0, 0, true},
		{"nope", 0, 0, 0, true},
	}
	for _, tt := range tests {
		r, g, b, err := HexToRGB(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("HexToRGB(%q): expected error", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("HexToRGB(%q): %v", tt.hex, err)
			continue
		}
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("HexToRGB(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestDarken(t *testing.T) {
	if got := Darken("#646464", 50); got != "#323232" {
		t.Errorf("Darken 50%% = %q, want #323232", got)
	}
	if got := Darken("#000000", 15); got != "#000000" {
		t.Errorf("Darken black = %q", got)
	}
	// Unparseable input passes through unchanged.
	if got := Darken("garbage", 15); got != "garbage" {
		t.Errorf("Darken on garbage = %q", got)
	}
}
