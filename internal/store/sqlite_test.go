package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/young1lin/tilegrid/grid"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen(t *testing.T) {
	// Create a temporary database file
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	tmpFile.Close()

	db, err := Open(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Verify tables were created
	for _, table := range []string{"focus", "presses"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("%s table was not created: %v", table, err)
		}
	}
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := Open("/invalid/path/that/cannot/be/created/test.db")
	if err == nil {
		t.Error("Expected error when opening invalid path, got nil")
	}
}

func TestFocusRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if _, ok, err := db.LoadFocus("media"); err != nil || ok {
		t.Fatalf("LoadFocus() on empty db = ok %v, err %v; want false, nil", ok, err)
	}

	if err := db.SaveFocus("media", grid.NewPosition(2, 1)); err != nil {
		t.Fatalf("SaveFocus() error = %v", err)
	}
	if err := db.SaveFocus("media", grid.NewPosition(0, 3)); err != nil {
		t.Fatalf("SaveFocus() update error = %v", err)
	}
	if err := db.SaveFocus("other", grid.NewPosition(5, 5)); err != nil {
		t.Fatalf("SaveFocus() other error = %v", err)
	}

	pos, ok, err := db.LoadFocus("media")
	if err != nil || !ok {
		t.Fatalf("LoadFocus() = ok %v, err %v", ok, err)
	}
	if !pos.Equal(grid.NewPosition(0, 3)) {
		t.Errorf("LoadFocus() = %v, want [x: 0, y: 3]", pos)
	}
}

func TestRecordPress(t *testing.T) {
	db := openTestDB(t)
	base := time.Now()

	labels := []string{"one", "two", "three"}
	for i, label := range labels {
		err := db.RecordPress(PressRecord{
			Layout:    "media",
			TileID:    grid.IDFor(label),
			Label:     label,
			Position:  grid.NewPosition(i, 0),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("RecordPress() error = %v", err)
		}
	}
	if err := db.RecordPress(PressRecord{Layout: "other", Label: "x"}); err != nil {
		t.Fatalf("RecordPress() without timestamp error = %v", err)
	}

	records, err := db.RecentPresses("media", 2)
	if err != nil {
		t.Fatalf("RecentPresses() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(RecentPresses()) = %d, want 2", len(records))
	}
	if records[0].Label != "three" || records[1].Label != "two" {
		t.Errorf("RecentPresses() order = %s, %s; want three, two", records[0].Label, records[1].Label)
	}
	if records[0].TileID != grid.IDFor("three") {
		t.Errorf("TileID = %q, want IDFor(three)", records[0].TileID)
	}
	if !records[0].Position.Equal(grid.NewPosition(2, 0)) {
		t.Errorf("Position = %v, want [x: 2, y: 0]", records[0].Position)
	}

	count, err := db.PressCount("media")
	if err != nil || count != 3 {
		t.Errorf("PressCount() = %d, %v; want 3", count, err)
	}

	if err := db.ClearPresses("media"); err != nil {
		t.Fatalf("ClearPresses() error = %v", err)
	}
	count, _ = db.PressCount("media")
	if count != 0 {
		t.Errorf("PressCount() after clear = %d, want 0", count)
	}
	count, _ = db.PressCount("other")
	if count != 1 {
		t.Errorf("PressCount(other) = %d, want 1", count)
	}
}

func TestRecentPressesEmpty(t *testing.T) {
	db := openTestDB(t)

	records, err := db.RecentPresses("none", 10)
	if err != nil {
		t.Fatalf("RecentPresses() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(RecentPresses()) = %d, want 0", len(records))
	}
}
