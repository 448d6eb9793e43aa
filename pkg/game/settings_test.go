package game

import "testing"

func TestSettingsPersistFullscreen(t *testing.T) {
	manager := openTestStore(t)

	store := NewSettingsStore(manager)
	if store.Settings().Fullscreen {
		t.Fatal("fresh settings should default to windowed")
	}
	if err := store.SetFullscreen(true); err != nil {
		t.Fatalf("SetFullscreen: %v", err)
	}

	if !NewSettingsStore(manager).Settings().Fullscreen {
		t.Error("fullscreen preference was not persisted")
	}
}

func TestSettingsCorruptRecordUsesDefaults(t *testing.T) {
	manager := openTestStore(t)
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	store := NewSettingsStore(manager)
	if store.Settings().Fullscreen {
		t.Error("corrupt record should fall back to defaults")
	}
	if err := store.Load(); err == nil {
		t.Error("Load should report the corrupt record")
	}
}

func TestSettingsInMemory(t *testing.T) {
	store := NewSettingsStore(nil)
	if err := store.SetFullscreen(true); err != nil {
		t.Fatalf("in-memory save: %v", err)
	}
	if !store.Settings().Fullscreen {
		t.Error("in-memory store should keep the value")
	}
}
