package checkout

import (
	"testing"
	"time"
)

func TestPresenceWidgetExpiresWithoutBeats(t *testing.T) {
	now := time.Now()
	w := NewPresenceWidget(time.Second)
	w.now = func() time.Time { return now }

	if w.Mounted() {
		t.Fatalf("unmounted widget should not be present")
	}
	if err := w.Mount("tok-a"); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if !w.Mounted() {
		t.Fatalf("freshly mounted widget should be present")
	}

	now = now.Add(900 * time.Millisecond)
	if !w.Mounted() {
		t.Fatalf("widget should survive inside the ttl")
	}
	w.Beat()
	now = now.Add(900 * time.Millisecond)
	if !w.Mounted() {
		t.Fatalf("beat should refresh presence")
	}

	now = now.Add(2 * time.Second)
	if w.Mounted() {
		t.Fatalf("silent widget should expire")
	}
}

func TestPresenceWidgetIgnoresBeatsAfterUnmount(t *testing.T) {
	w := NewPresenceWidget(time.Second)
	if err := w.Mount("tok-a"); err != nil {
		t.Fatalf("mount: %v", err)
	}
	w.Unmount()
	w.Beat()
	if w.Mounted() {
		t.Fatalf("unmounted widget must stay gone")
	}
}
