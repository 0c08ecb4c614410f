// Package model re-exports the view-model types renderers consume. The
// concrete definitions live in internal/model; this package is the stable
// import path for callers.
package model

import internalmodel "github.com/goliatone/go-recordview/internal/model"

type ResolvedField = internalmodel.ResolvedField
type Section = internalmodel.Section
type ChecklistEntry = internalmodel.ChecklistEntry
type DocumentGroup = internalmodel.DocumentGroup
type File = internalmodel.File
type ViewModel = internalmodel.ViewModel
type Labeler = internalmodel.Labeler

// DefaultLabeler humanizes a field id (underscores, dashes, and camelCase
// boundaries become spaces, words are title-cased).
func DefaultLabeler(id string) string { return internalmodel.DefaultLabeler(id) }
