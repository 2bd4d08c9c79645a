package notify

import "testing"

func TestLoadPreferencesDefaults(t *testing.T) {
	t.Setenv("IMGMAP_NOTIFY_TITLE", "")
	t.Setenv("IMGMAP_NOTIFY_COPY_TEXT", "")

	prefs := LoadPreferences()
	if prefs.Title != "ImgMap" {
		t.Errorf("default title = %q", prefs.Title)
	}
	if prefs.Events[EventCopy].Template != "Copied %s to clipboard" {
		t.Errorf("default copy template = %q", prefs.Events[EventCopy].Template)
	}
}

func TestLoadPreferencesFromEnvironment(t *testing.T) {
	t.Setenv("IMGMAP_NOTIFY_TITLE", "Maps")
	t.Setenv("IMGMAP_NOTIFY_EXPORT_TEXT", "Done: %s")

	prefs := LoadPreferences()
	if prefs.Title != "Maps" {
		t.Errorf("title = %q, want Maps", prefs.Title)
	}
	if prefs.Events[EventExport].Template != "Done: %s" {
		t.Errorf("export template = %q", prefs.Events[EventExport].Template)
	}
	if prefs.Events[EventSave].Template != "Saved %s" {
		t.Errorf("unset event must keep its default, got %q", prefs.Events[EventSave].Template)
	}
}

func TestEventsDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	for _, e := range []Event{EventCopy, EventSave, EventExport} {
		if n.enabledFor(e) {
			t.Errorf("%s must start disabled", e)
		}
	}
	n.Enable(EventCopy, true)
	if !n.enabledFor(EventCopy) {
		t.Error("Enable did not take effect")
	}
	if n.enabledFor(EventSave) {
		t.Error("enabling one event must not enable others")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Enable(EventCopy, true)
	n.Copy("react")
	n.Save("out.html")
	n.Export("out.webp")
}
