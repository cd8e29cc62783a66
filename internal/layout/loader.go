package layout

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// FormatConstraint is the range of layout format versions this loader reads
const FormatConstraint = ">= 1.0.0, < 2.0.0"

// DefaultFormat is assumed when a document does not declare one
const DefaultFormat = "1.0.0"

var (
	// ErrUnsupportedExtension is returned for files that are not yaml, toml or xlsx
	ErrUnsupportedExtension = errors.New("unsupported layout file extension")
	// ErrIncompatibleFormat is returned when the format version is out of range
	ErrIncompatibleFormat = errors.New("incompatible layout format")
	// ErrNoTiles is returned when a layout has no tiles at all
	ErrNoTiles = errors.New("layout has no tiles")
	// ErrDuplicateKey is returned when two tiles share a key
	ErrDuplicateKey = errors.New("duplicate tile key")
)

// Loader reads layouts through a FileSystem
type Loader struct {
	fs    FileSystem
	sheet string
}

// NewLoader creates a loader backed by the real file system
func NewLoader() *Loader {
	return NewLoaderWithFS(OSFileSystem{})
}

// NewLoaderWithFS creates a loader with a custom file system (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// WithSheet selects the workbook sheet read from xlsx files
func (l *Loader) WithSheet(sheet string) *Loader {
	l.sheet = sheet
	return l
}

// Load reads and validates the layout at path
func (l *Loader) Load(path string) (*Layout, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat layout: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("layout path %s is a directory", path)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	doc, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	out, err := Build(doc)
	if err != nil {
		return nil, err
	}
	out.Path = path
	return out, nil
}

func (l *Loader) decode(path string, data []byte) (Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".toml":
		return DecodeTOML(data)
	case ".xlsx":
		return DecodeXLSX(data, l.sheet)
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedExtension, filepath.Ext(path))
	}
}

// DecodeYAML parses a YAML layout document
func DecodeYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse yaml layout: %w", err)
	}
	return doc, nil
}

// DecodeTOML parses a TOML layout document
func DecodeTOML(data []byte) (Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse toml layout: %w", err)
	}
	return doc, nil
}

// DecodeXLSX reads a workbook sheet as a layout. Every non-empty cell becomes
// a tile keyed by its cell name; hidden sheet rows become hidden layout rows.
// An empty sheet name selects the first sheet.
func DecodeXLSX(data []byte, sheet string) (Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Document{}, ErrNoTiles
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	doc := Document{Name: sheet, Format: DefaultFormat}
	for r, values := range rows {
		visible, err := f.GetRowVisible(sheet, r+1)
		if err != nil {
			return Document{}, fmt.Errorf("failed to read row %d visibility: %w", r+1, err)
		}
		def := RowDef{Hidden: !visible}
		for c, value := range values {
			if strings.TrimSpace(value) == "" {
				continue
			}
			key, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return Document{}, err
			}
			label, detail := splitLabel(value)
			def.Tiles = append(def.Tiles, TileDef{Key: key, Label: label, Detail: detail})
		}
		doc.Rows = append(doc.Rows, def)
	}
	return doc, nil
}

// CheckFormat verifies that a document's format version can be read
func CheckFormat(format string) error {
	if format == "" {
		format = DefaultFormat
	}
	v, err := semver.NewVersion(format)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrIncompatibleFormat, format, err)
	}
	c, err := semver.NewConstraint(FormatConstraint)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s not in %s", ErrIncompatibleFormat, v, FormatConstraint)
	}
	return nil
}

// Build converts a document into a layout. Rows without tiles are dropped
// and tiles without a key get a positional one.
func Build(doc Document) (*Layout, error) {
	if err := CheckFormat(doc.Format); err != nil {
		return nil, err
	}

	out := &Layout{Name: doc.Name}
	seen := make(map[string]bool)
	for r, row := range doc.Rows {
		if len(row.Tiles) == 0 {
			continue
		}
		tiles := make([]Tile, 0, len(row.Tiles))
		for c, def := range row.Tiles {
			if def.Key == "" {
				def.Key = fmt.Sprintf("r%dc%d", r, c)
			}
			if seen[def.Key] {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, def.Key)
			}
			seen[def.Key] = true
			if def.Label == "" {
				def.Label = def.Key
			}
			tiles = append(tiles, NewTile(doc.Name, def))
		}
		out.Rows = append(out.Rows, tiles)
		out.hidden = append(out.hidden, row.Hidden)
	}

	if len(out.Rows) == 0 {
		return nil, ErrNoTiles
	}
	return out, nil
}

// Load reads a layout from the real file system
func Load(path string) (*Layout, error) {
	return NewLoader().Load(path)
}
