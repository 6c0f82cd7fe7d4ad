// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the artist directory:
//  1. [ChartView] : Browse the popularity chart
//  2. [CatalogView] : Preview an artist's generated catalog
//  3. [SimilarView] : Explore genre-based recommendations
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Data is resolved through the directory engine inside tea commands so the
// event loop never blocks on storage tiers.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, s, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
