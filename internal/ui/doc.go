// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a drill-down browser over the synced catalog:
//  1. [AreaListView] : Browse taxonomy areas
//  2. [NicheListView] : Niches inside the selected area
//  3. [SkillListView] : Skills linked to the selected niche, popularity ranked
//  4. [LanguageListView] : Programming languages, reachable from the area list
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. All reads go through the cache-aside query layer, so browsing never
// touches the external sources.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
