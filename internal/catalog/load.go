package catalog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// Load reads one catalog document from fs. The catalog id is the
// filename stem; the document must contain that id as a top-level
// mapping key, which is stripped before any flattening.
func Load(fs billy.Filesystem, path string) (*Catalog, error) {
	doc, err := readDocument(fs, path)
	if err != nil {
		return nil, err
	}

	id := Stem(path)
	root, ok := doc[id]
	if !ok {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("document has no top-level %q key", id)}
	}
	tree, ok := root.(Tree)
	if !ok {
		return nil, &MalformedInputError{Path: id, Reason: fmt.Sprintf("catalog root is %T, want mapping", root)}
	}
	return &Catalog{ID: id, Root: tree}, nil
}

// LoadFlat reads an already-flattened catalog document: a single-level
// mapping of dot-joined paths to string values. Returns the map and the
// catalog id derived from the filename.
func LoadFlat(fs billy.Filesystem, path string) (FlatMap, string, error) {
	doc, err := readDocument(fs, path)
	if err != nil {
		return nil, "", err
	}

	flat := make(FlatMap, len(doc))
	for key, value := range doc {
		s, ok := value.(string)
		if !ok {
			return nil, "", &MalformedInputError{Path: key, Reason: fmt.Sprintf("flat value is %T, want string", value)}
		}
		flat[key] = s
	}
	return flat, Stem(path), nil
}

func readDocument(fs billy.Filesystem, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parseDocument(content, filepath.Ext(path))
}

func parseDocument(content []byte, ext string) (map[string]any, error) {
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		var doc map[string]any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("invalid yaml: %v", err)}
		}
		if doc == nil {
			return nil, &MalformedInputError{Reason: "document is empty"}
		}
		return doc, nil
	case ".json":
		parsed, err := oj.Parse(content)
		if err != nil {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("invalid json: %v", err)}
		}
		doc, ok := parsed.(map[string]any)
		if !ok {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("document root is %T, want mapping", parsed)}
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
}

// Stem derives a catalog id from a filename: directory and extension
// stripped ("config/locales/en.yml" → "en").
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
