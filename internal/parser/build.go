// Package parser provides utilities for loading graph definitions.
// It handles HCL decoding, validation, and conversion into graph records.
package parser

import (
	"github.com/graphexplorer/core/internal/graph"
)

// BuildGraph turns a definition into the store and its index.
func BuildGraph(def *Definition) (*graph.Index, error) {
	store, err := graph.NewStore(def.Nodes, def.Edges)
	if err != nil {
		return nil, err
	}
	return graph.NewIndex(store)
}

// Load builds the graph from the HCL file at path, or from the built-in demo
// definition when path is empty.
func Load(path string) (*graph.Index, error) {
	var (
		def *Definition
		err error
	)
	if path == "" {
		def, err = DemoDefinition()
	} else {
		def, err = LoadDefinitionFile(path)
	}
	if err != nil {
		return nil, err
	}
	return BuildGraph(def)
}
