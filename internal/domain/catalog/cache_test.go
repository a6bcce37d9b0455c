package catalog

import (
	"os"
	"testing"
	"time"

	"github.com/termdeck/termdeck/internal/shared/types"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	used := time.Now().Add(-time.Hour).Truncate(time.Second)
	records := []types.AppRecord{
		{Identity: "com.a.chat", Name: "Chatter", Category: types.CategoryOther, LastUsed: &used},
		{Identity: "com.b.work", Name: "Workly", Category: types.CategoryOther, System: true},
	}

	if err := store.Write(records); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("read %d records, want 2", len(got))
	}
	if got[0].Identity != "com.a.chat" || got[0].Name != "Chatter" {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[0].LastUsed == nil || !got[0].LastUsed.Equal(used) {
		t.Errorf("record 0 LastUsed = %v, want %v", got[0].LastUsed, used)
	}
	if !got[1].System {
		t.Error("record 1 lost its system flag")
	}
}

func TestStoreReadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Read(); err == nil {
		t.Error("expected error for missing cache")
	}
}

func TestStoreReadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(store.Path(), []byte("not gzip data"), 0o644); err != nil {
		t.Fatalf("write corrupt cache: %v", err)
	}
	if _, err := store.Read(); err == nil {
		t.Error("expected error for corrupt cache")
	}
}

func TestStoreWriteReplacesPrevious(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Write([]types.AppRecord{{Identity: "com.old", Name: "Old"}}); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := store.Write([]types.AppRecord{{Identity: "com.new", Name: "New"}}); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got[0].Identity != "com.new" {
		t.Errorf("cache = %+v, want only the newest snapshot", got)
	}
}
