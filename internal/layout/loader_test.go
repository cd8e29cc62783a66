package layout

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/xuri/excelize/v2"

	"github.com/young1lin/tilegrid/grid"
)

const sampleYAML = `
name: media
format: 1.2.0
rows:
  - tiles:
      - {key: play, label: Play, detail: resume}
      - {key: stop, label: Stop}
  - hidden: true
    tiles:
      - {key: debug, label: Debug}
  - tiles: []
  - tiles:
      - {key: eject, label: Eject, disabled: true}
      - {label: Spare}
`

const sampleTOML = `
name = "numbers"

[[rows]]
[[rows.tiles]]
key = "one"
label = "One"
[[rows.tiles]]
key = "two"
label = "Two"

[[rows]]
hidden = true
[[rows.tiles]]
key = "three"
label = "Three"
`

// mockFileInfo is a minimal os.FileInfo mock for testing
type mockFileInfo struct {
	isDir bool
}

func (m *mockFileInfo) Name() string       { return "mock" }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() os.FileMode  { return 0644 }
func (m *mockFileInfo) ModTime() time.Time { return time.Now() }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

func newMockLoader(t *testing.T, path string, data []byte) *Loader {
	ctrl := gomock.NewController(t)
	mockFS := NewMockFileSystem(ctrl)
	mockFS.EXPECT().Stat(path).Return(&mockFileInfo{}, nil)
	mockFS.EXPECT().ReadFile(path).Return(data, nil)
	return NewLoaderWithFS(mockFS)
}

func TestLoadYAML(t *testing.T) {
	l, err := newMockLoader(t, "media.yaml", []byte(sampleYAML)).Load("media.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if l.Name != "media" {
		t.Errorf("Name = %q, want media", l.Name)
	}
	if l.Path != "media.yaml" {
		t.Errorf("Path = %q, want media.yaml", l.Path)
	}
	// The empty row is dropped
	if len(l.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(l.Rows))
	}
	if l.TileCount() != 5 {
		t.Errorf("TileCount() = %d, want 5", l.TileCount())
	}
	if !l.IsHidden(1) || l.IsHidden(0) || l.IsHidden(2) || l.IsHidden(9) {
		t.Errorf("IsHidden() = %v %v %v, want false true false", l.IsHidden(0), l.IsHidden(1), l.IsHidden(2))
	}
	if l.HiddenCount() != 1 {
		t.Errorf("HiddenCount() = %d, want 1", l.HiddenCount())
	}

	play := l.Rows[0][0]
	if play.View() != "Play\nresume" {
		t.Errorf("View() = %q, want %q", play.View(), "Play\nresume")
	}
	if play.ID() != grid.IDFor("media/play") {
		t.Errorf("ID() = %q, want IDFor(media/play)", play.ID())
	}
	if !l.Rows[2][0].Disabled() {
		t.Error("eject should be disabled")
	}
	spare := l.Rows[2][1]
	// the empty document row still counts toward the positional key
	if spare.Key() != "r3c1" || spare.Label() != "Spare" {
		t.Errorf("spare = %q/%q, want r3c1/Spare", spare.Key(), spare.Label())
	}
}

func TestLoadTOML(t *testing.T) {
	l, err := newMockLoader(t, "n.toml", []byte(sampleTOML)).Load("n.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Name != "numbers" {
		t.Errorf("Name = %q, want numbers", l.Name)
	}
	if len(l.Rows) != 2 || len(l.Rows[0]) != 2 {
		t.Fatalf("Rows shape = %d, want 2 rows with 2 tiles in the first", len(l.Rows))
	}
	if !l.IsHidden(1) {
		t.Error("second row should be hidden")
	}
	if l.Rows[0][1].View() != "Two" {
		t.Errorf("View() = %q, want Two", l.Rows[0][1].View())
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Alpha\nfirst")
	f.SetCellValue(sheet, "B1", "Beta")
	f.SetCellValue(sheet, "A2", "Gamma")
	f.SetCellValue(sheet, "C2", "Delta")
	if err := f.SetRowVisible(sheet, 2, false); err != nil {
		t.Fatalf("SetRowVisible() error = %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}

	l, err := newMockLoader(t, "board.xlsx", buf.Bytes()).Load("board.xlsx")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Name != sheet {
		t.Errorf("Name = %q, want %q", l.Name, sheet)
	}
	if len(l.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(l.Rows))
	}
	// Empty cells are skipped, giving a jagged row
	if len(l.Rows[1]) != 2 || l.Rows[1][1].Key() != "C2" {
		t.Errorf("row 1 = %d tiles, want Gamma and C2", len(l.Rows[1]))
	}
	if l.Rows[0][0].Label() != "Alpha" || l.Rows[0][0].Detail() != "first" {
		t.Errorf("A1 = %q/%q, want Alpha/first", l.Rows[0][0].Label(), l.Rows[0][0].Detail())
	}
	if !l.IsHidden(1) || l.IsHidden(0) {
		t.Error("row 2 of the sheet should be hidden")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		want error
	}{
		{"extension", "layout.json", "{}", ErrUnsupportedExtension},
		{"major format", "a.yaml", "format: 2.0.0\nrows: [{tiles: [{key: a}]}]", ErrIncompatibleFormat},
		{"bad format", "a.yaml", "format: banana\nrows: [{tiles: [{key: a}]}]", ErrIncompatibleFormat},
		{"no tiles", "a.yaml", "rows: [{tiles: []}]", ErrNoTiles},
		{"duplicate", "a.yaml", "rows: [{tiles: [{key: a}, {key: a}]}]", ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newMockLoader(t, tt.path, []byte(tt.data)).Load(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadStatError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := NewMockFileSystem(ctrl)
	mockFS.EXPECT().Stat(gomock.Any()).Return(nil, os.ErrNotExist)

	_, err := NewLoaderWithFS(mockFS).Load("missing.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestLoadDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := NewMockFileSystem(ctrl)
	mockFS.EXPECT().Stat(gomock.Any()).Return(&mockFileInfo{isDir: true}, nil)

	if _, err := NewLoaderWithFS(mockFS).Load("dir.yaml"); err == nil {
		t.Error("Load() on a directory should fail")
	}
}

func TestLoadNameFromPath(t *testing.T) {
	l, err := newMockLoader(t, "/tmp/keys.yml", []byte("rows: [{tiles: [{key: a}]}]")).Load("/tmp/keys.yml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Name != "keys" {
		t.Errorf("Name = %q, want keys", l.Name)
	}
	if l.Rows[0][0].ID() != grid.IDFor("keys/a") {
		t.Error("tile id should use the name derived from the path")
	}
}

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		format string
		ok     bool
	}{
		{"", true},
		{"1.0.0", true},
		{"1.9", true},
		{"0.9.0", false},
		{"2.0.0", false},
	}
	for _, tt := range tests {
		err := CheckFormat(tt.format)
		if (err == nil) != tt.ok {
			t.Errorf("CheckFormat(%q) error = %v, want ok %v", tt.format, err, tt.ok)
		}
	}
}
