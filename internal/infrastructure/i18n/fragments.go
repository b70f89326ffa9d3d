package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"ytreport/internal/domain"
	"ytreport/internal/domain/entities"
	"ytreport/internal/ports/output"
)

//go:embed locales/*
var localeFS embed.FS

// DefaultPatterns match both fragment naming conventions:
// "<base>_<locale>.<ext>" and "<base>.<ext>_<locale>".
var DefaultPatterns = []string{"*_*.*", "*.*_*"}

var _ output.FragmentSource = (*FSSource)(nil)

// FSSource enumerates translation fragments stored in a file system.
type FSSource struct {
	fsys fs.FS
	keys []string
}

// NewFSSource collects the files of fsys matching any of patterns.
// Keys are returned in lexical order, which makes the merge order stable.
func NewFSSource(fsys fs.FS, patterns ...string) (*FSSource, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := make(map[string]struct{})
	var keys []string
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("i18n: glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			keys = append(keys, m)
		}
	}
	sort.Strings(keys)

	return &FSSource{fsys: fsys, keys: keys}, nil
}

// EmbeddedSource exposes the locales shipped with the binary.
func EmbeddedSource() (*FSSource, error) {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	return NewFSSource(sub)
}

// DirSource reads fragments from a directory on disk.
func DirSource(dir string) (*FSSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: locales dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("i18n: locales dir %q is not a directory", dir)
	}
	return NewFSSource(os.DirFS(dir))
}

func (s *FSSource) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *FSSource) Load(id string) (map[string]entities.Dictionary, error) {
	data, err := fs.ReadFile(s.fsys, id)
	if err != nil {
		return nil, err
	}
	return DecodeFragment(id, data)
}

// fragmentFormat returns the extension of id, ignoring a trailing
// "_<locale>" suffix ("app.po_fr" → "po").
func fragmentFormat(id string) string {
	_, tail, _ := strings.Cut(path.Base(id), ".")
	format, _, _ := strings.Cut(tail, "_")
	if i := strings.LastIndex(format, "."); i >= 0 {
		format = format[i+1:]
	}
	return strings.ToLower(format)
}

// DecodeFragment parses data according to the format encoded in id.
func DecodeFragment(id string, data []byte) (map[string]entities.Dictionary, error) {
	var (
		raw map[string]any
		err error
	)
	switch format := fragmentFormat(id); format {
	case "po":
		return ParsePO(data)
	case "toml":
		err = toml.Unmarshal(data, &raw)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &raw)
	case "json":
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("fragment %q (%s): %w", id, format, domain.ErrUnsupportedFragment)
	}
	if err != nil {
		return nil, fmt.Errorf("fragment %q: %w", id, err)
	}
	return groupDocument(id, raw)
}

// groupDocument maps a decoded document onto fragment groups. Top-level
// scalars land in the "" group; each top-level table becomes a group whose
// nested tables are flattened with dotted keys. Lists and nulls are rejected.
func groupDocument(id string, raw map[string]any) (map[string]entities.Dictionary, error) {
	groups := make(map[string]entities.Dictionary)
	for key, value := range raw {
		if table, ok := asTable(value); ok {
			dict := make(entities.Dictionary)
			if err := flattenInto(id, dict, "", table); err != nil {
				return nil, err
			}
			groups[key] = dict
			continue
		}
		s, err := scalarString(id, key, value)
		if err != nil {
			return nil, err
		}
		if groups[""] == nil {
			groups[""] = make(entities.Dictionary)
		}
		groups[""][key] = s
	}
	return groups, nil
}

func flattenInto(id string, dict entities.Dictionary, prefix string, table map[string]any) error {
	for key, value := range table {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := asTable(value); ok {
			if err := flattenInto(id, dict, key, nested); err != nil {
				return err
			}
			continue
		}
		s, err := scalarString(id, key, value)
		if err != nil {
			return err
		}
		dict[key] = s
	}
	return nil
}

// asTable normalizes decoded maps; yaml.v3 yields map[any]any as soon as one
// key is not a string (e.g. "404: Not found").
func asTable(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func scalarString(id, key string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", fmt.Errorf("fragment %q: key %q: null value", id, key)
	case []any:
		return "", fmt.Errorf("fragment %q: key %q: lists are not translations", id, key)
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("fragment %q: key %q: unsupported value of type %T", id, key, value)
	}
}
