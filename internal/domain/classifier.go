// Package domain contains the core classification workflow and logic.
package domain

import (
	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/mouse-blink/paradigm/internal/model"
)

// Node kinds of the tree-sitter TypeScript/TSX grammars that the classifier
// recognizes. Every other kind is traversed but not tallied.
const (
	kindClassDeclaration         = "class_declaration"
	kindAbstractClassDeclaration = "abstract_class_declaration"
	kindClassExpression          = "class"
	kindClassBody                = "class_body"
	kindMethodDefinition         = "method_definition"
	kindFunctionDeclaration      = "function_declaration"
	kindGeneratorDeclaration     = "generator_function_declaration"
	kindFunctionExpression       = "function"
	// Newer grammar revisions renamed the function expression node.
	kindFunctionExpressionAlt = "function_expression"
	kindGeneratorExpression   = "generator_function"
	kindArrowFunction         = "arrow_function"
)

// Classify walks the syntax tree rooted at root and tallies class, method,
// function and arrow constructs. It never fails: unrecognized node kinds are
// simply traversed, and error nodes from a best-effort parse contribute
// whatever recognizable children they contain. The tree is not mutated, so
// classifying the same tree twice yields identical counts.
func Classify(root *sitter.Node) m.Counts {
	var counts m.Counts

	visit(root, false, &counts)

	return counts
}

// visit dispatches on the node kind and recurses into children exactly once.
// inClass is inherited by value: it turns on upon entering a class body and
// stays on for that whole subtree, so nothing lexically inside a class is
// tallied as a free-standing FP construct.
func visit(node *sitter.Node, inClass bool, counts *m.Counts) {
	if node == nil {
		return
	}

	// Anonymous nodes are keyword and punctuation tokens. The `class` and
	// `function` keywords share their type string with the class/function
	// expression node kinds, so they must not reach the dispatch below.
	if !node.IsNamed() {
		for i := 0; i < int(node.ChildCount()); i++ {
			visit(node.Child(i), inClass, counts)
		}

		return
	}

	switch node.Type() {
	case kindClassDeclaration, kindAbstractClassDeclaration, kindClassExpression:
		counts.Classes++

		// Only the class body flips the flag. Decorators, the name, type
		// parameters and heritage clauses precede the body and keep the
		// incoming value.
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() == kindClassBody {
				visit(child, true, counts)
			} else {
				visit(child, inClass, counts)
			}
		}

		return

	case kindMethodDefinition:
		// Methods, constructors, getters and setters share one bucket. The
		// grammar only produces this kind inside a class body, but the gate
		// keeps the tally correct should that ever change.
		if inClass {
			counts.Methods++
		}

	case kindFunctionDeclaration, kindGeneratorDeclaration:
		// Function declarations cannot be class members, so no gate.
		counts.Functions++

	case kindFunctionExpression, kindFunctionExpressionAlt, kindGeneratorExpression:
		// Inside a class this is part of the class implementation: dropped
		// from the FP tally without being reassigned to methods.
		if !inClass {
			counts.Functions++
		}

	case kindArrowFunction:
		if !inClass {
			counts.Arrows++
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		visit(node.Child(i), inClass, counts)
	}
}
