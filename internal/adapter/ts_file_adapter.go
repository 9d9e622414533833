package adapter

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	m "github.com/mouse-blink/paradigm/internal/model"
)

// Dialect selects the grammar used to parse a source file.
type Dialect string

// Recognized dialects. DialectTSX additionally understands embedded JSX markup.
const (
	DialectTypeScript Dialect = "typescript"
	DialectTSX        Dialect = "tsx"
)

// TSFileAdapter encapsulates TypeScript parsing so the domain layer can focus
// on classification rules while delegating grammar details to an
// infrastructure component.
type TSFileAdapter interface {
	// Parse builds a syntax tree for the provided file contents. The dialect
	// is selected purely from the file extension. Parsing is best-effort: a
	// tree is produced even for syntactically invalid input. The caller owns
	// the returned tree and must Close it.
	Parse(ctx context.Context, path m.Path, content []byte) (*sitter.Tree, error)
}

// LocalTSFileAdapter provides a concrete TSFileAdapter backed by tree-sitter.
type LocalTSFileAdapter struct{}

// NewLocalTSFileAdapter constructs a LocalTSFileAdapter.
func NewLocalTSFileAdapter() *LocalTSFileAdapter {
	return &LocalTSFileAdapter{}
}

// Parse builds a syntax tree for the provided path/content pair. A fresh
// tree-sitter parser is created per call so the adapter is safe for
// concurrent use.
func (a *LocalTSFileAdapter) Parse(ctx context.Context, path m.Path, content []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()

	switch DialectFor(path) {
	case DialectTSX:
		parser.SetLanguage(tsx.GetLanguage())
	default:
		parser.SetLanguage(typescript.GetLanguage())
	}

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return tree, nil
}

// DialectFor returns the dialect implied by the file extension.
func DialectFor(path m.Path) Dialect {
	if strings.HasSuffix(string(path), tsxExt) {
		return DialectTSX
	}

	return DialectTypeScript
}
