package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewStoreWithoutFileUsesLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := NewStore(path, "en_US.UTF-8")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	got := s.Get()
	if got.Language != LanguageEnglish {
		t.Errorf("expected en, got %q", got.Language)
	}
	if got.OriginalFontSize != Defaults().OriginalFontSize {
		t.Error("expected defaults")
	}
}

func TestNewStoreKeepsSavedLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"language":"ko","padding":20}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(path, "en_US")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	got := s.Get()
	if got.Language != LanguageKorean {
		t.Errorf("saved language should win over locale, got %q", got.Language)
	}
	if got.Padding != 20 {
		t.Errorf("expected padding 20, got %d", got.Padding)
	}
}

func TestNewStoreCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(path, "ko_KR")
	if err != nil {
		t.Fatalf("corrupt file should not fail: %v", err)
	}
	if s.Get().Language != LanguageKorean {
		t.Error("expected locale language on fallback")
	}
}

func TestUpdatePersistsAndBroadcasts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	s, err := NewStore(path, "en")
	if err != nil {
		t.Fatal(err)
	}

	id, ch := s.Subscribe()
	defer s.Unsubscribe(id)

	next, err := s.Update(func(o *Overlay) { o.LyricsPrevLines = 2 })
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if next.LyricsPrevLines != 2 {
		t.Errorf("expected 2, got %d", next.LyricsPrevLines)
	}

	select {
	case got := <-ch:
		if got.LyricsPrevLines != 2 {
			t.Errorf("broadcast carried %d", got.LyricsPrevLines)
		}
	case <-time.After(time.Second):
		t.Fatal("no broadcast")
	}

	reopened, err := NewStore(path, "ko")
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Get().LyricsPrevLines != 2 {
		t.Error("change was not persisted")
	}
	if reopened.Get().Language != LanguageEnglish {
		t.Error("persisted language lost")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestUpdateWithoutChangeDoesNotBroadcast(t *testing.T) {
	s, err := NewStore("", "en")
	if err != nil {
		t.Fatal(err)
	}

	id, ch := s.Subscribe()
	defer s.Unsubscribe(id)

	if _, err := s.Update(func(o *Overlay) {}); err != nil {
		t.Fatal(err)
	}

	select {
	case <-ch:
		t.Error("unexpected broadcast for a no-op update")
	default:
	}
}

func TestSlowSubscriberGetsLatest(t *testing.T) {
	s, err := NewStore("", "en")
	if err != nil {
		t.Fatal(err)
	}

	id, ch := s.Subscribe()
	defer s.Unsubscribe(id)

	for i := 1; i <= subscriberBuffer+3; i++ {
		n := i
		if _, err := s.Update(func(o *Overlay) { o.Padding = n }); err != nil {
			t.Fatal(err)
		}
	}

	var last Overlay
	for {
		select {
		case got := <-ch:
			last = got
			continue
		default:
		}
		break
	}

	if last.Padding != subscriberBuffer+3 {
		t.Errorf("expected the latest value %d, got %d", subscriberBuffer+3, last.Padding)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s, err := NewStore("", "en")
	if err != nil {
		t.Fatal(err)
	}

	got := s.Get()
	got.ElementOrder[0] = "mutated"

	if s.Get().ElementOrder[0] != ElementTrackInfo {
		t.Error("Get leaked internal slice")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	s, err := NewStore("", "en")
	if err != nil {
		t.Fatal(err)
	}

	id, ch := s.Subscribe()
	s.Unsubscribe(id)

	if _, ok := <-ch; ok {
		t.Error("expected closed channel")
	}

	// second unsubscribe is a no-op
	s.Unsubscribe(id)
}

func TestSetupMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := NewStore(path, "en")
	if err != nil {
		t.Fatal(err)
	}

	if s.SetupComplete() {
		t.Fatal("fresh store should need setup")
	}
	if err := s.MarkSetupComplete(); err != nil {
		t.Fatal(err)
	}
	if !s.SetupComplete() {
		t.Error("expected setup complete")
	}
	if err := s.ResetSetup(); err != nil {
		t.Fatal(err)
	}
	if s.SetupComplete() {
		t.Error("expected setup reset")
	}
	if err := s.ResetSetup(); err != nil {
		t.Errorf("resetting twice should be fine: %v", err)
	}
}

func TestWatchPicksUpExternalWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := NewStore(path, "en")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Update(func(o *Overlay) { o.Padding = 1 }); err != nil {
		t.Fatal(err)
	}

	id, ch := s.Subscribe()
	defer s.Unsubscribe(id)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	// let the watcher register before writing
	time.Sleep(100 * time.Millisecond)

	other, err := NewStore(path, "en")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.Update(func(o *Overlay) { o.Padding = 42 }); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case got := <-ch:
			if got.Padding == 42 {
				if s.Get().Padding != 42 {
					t.Error("store state not updated")
				}
				return
			}
		case <-deadline:
			t.Fatal("external write was not observed")
		}
	}
}

func TestReloadIgnoresOwnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := NewStore(path, "en")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Update(func(o *Overlay) { o.Padding = 7 }); err != nil {
		t.Fatal(err)
	}

	id, ch := s.Subscribe()
	defer s.Unsubscribe(id)

	if err := s.reload(); err != nil {
		t.Fatal(err)
	}

	select {
	case <-ch:
		t.Error("own write should not rebroadcast")
	default:
	}
}
