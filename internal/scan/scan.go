// Package scan finds catalog-key references in a source tree.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/agentic-research/localediff/api"
)

// Scan walks a source directory, parses every file with a known
// tree-sitter language, and matches string literals against the given
// catalog keys. Dynamically constructed keys cannot be detected, so the
// unused list is advisory.
func Scan(root string, keys []string) (*api.UsageReport, error) {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = false
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		lang := languageForPath(path)
		if lang == nil {
			return nil // unknown language — skip
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		parser := sitter.NewParser()
		parser.SetLanguage(lang)
		tree, err := parser.ParseCtx(context.Background(), nil, content)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		collectLiterals(tree.RootNode(), content, wanted)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source: %w", err)
	}

	report := &api.UsageReport{}
	for key, used := range wanted {
		if used {
			report.Used = append(report.Used, key)
		} else {
			report.Unused = append(report.Unused, key)
		}
	}
	sort.Strings(report.Used)
	sort.Strings(report.Unused)
	return report, nil
}

// collectLiterals marks every key whose text appears as a string
// literal anywhere in the AST.
func collectLiterals(n *sitter.Node, source []byte, wanted map[string]bool) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "interpreted_string_literal", "raw_string_literal", "string", "string_literal":
		text := strings.Trim(n.Content(source), "\"'`")
		if _, ok := wanted[text]; ok {
			wanted[text] = true
		}
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		collectLiterals(n.Child(i), source, wanted)
	}
}

// languageForPath maps file extensions to tree-sitter languages.
func languageForPath(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return golang.GetLanguage()
	case ".py":
		return python.GetLanguage()
	case ".js":
		return javascript.GetLanguage()
	case ".ts", ".tsx":
		return typescript.GetLanguage()
	default:
		return nil
	}
}
