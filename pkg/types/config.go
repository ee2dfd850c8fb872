// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultRootMap is the map treated as the collection root. Its name is
// stripped from every other document's relative path but kept when the
// path is the root map itself.
const DefaultRootMap = "learn-anything"

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// InputDir is the directory holding the exported map collection.
	// Required.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory the normalized maps are written under,
	// mirroring the input's subdirectory structure. Required.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// RootMap is the collection's root document name (default
	// "learn-anything").
	RootMap string `json:"root_map" yaml:"root_map"`
}

// IndexConfig holds settings for the node index stage.
type IndexConfig struct {
	// MapsDir is the directory of converted maps to index.
	MapsDir string `json:"maps_dir" yaml:"maps_dir"`

	// IndexDir is the directory holding the SQLite database and exports.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of search results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Index   IndexConfig   `json:"index" yaml:"index"`
}
