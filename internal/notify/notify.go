// Package notify sends desktop notifications for clipboard copies, markup
// saves and finished exports. Every event is off until enabled.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/imgmap/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCopy emits a notification when markup is copied to the clipboard.
	EventCopy Event = "copy"
	// EventSave emits a notification when a markup fragment is written to disk.
	EventSave Event = "save"
	// EventExport emits a notification when a crop or batch export finishes.
	EventExport Event = "export"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "ImgMap",
		Events: map[Event]EventPreference{
			EventCopy:   {Template: "Copied %s to clipboard"},
			EventSave:   {Template: "Saved %s"},
			EventExport: {Template: "Exported %s"},
		},
	}
}

// LoadPreferences reads notification settings from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("IMGMAP_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("IMGMAP_NOTIFY_COPY_TEXT", EventCopy)
	apply("IMGMAP_NOTIFY_SAVE_TEXT", EventSave)
	apply("IMGMAP_NOTIFY_EXPORT_TEXT", EventExport)
	return prefs
}

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Copy sends a clipboard notification. The detail names what was copied,
// usually the target framework of the fragment.
func (n *Notifier) Copy(detail string) {
	if strings.TrimSpace(detail) == "" {
		detail = "markup"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

// Save sends a notification for a written markup file.
func (n *Notifier) Save(path string) {
	n.dispatch(EventSave, absDetail(path), platform.Options{})
}

// Export sends a notification for a finished crop or batch export. The
// written image doubles as the notification icon where the platform shows one.
func (n *Notifier) Export(path string) {
	detail := absDetail(path)
	opts := platform.Options{}
	if _, err := os.Stat(detail); err == nil {
		opts.IconPath = detail
	}
	n.dispatch(EventExport, detail, opts)
}

func absDetail(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return strings.TrimSpace(path)
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := platform.Notify(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if n == nil {
		return ""
	}
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}
