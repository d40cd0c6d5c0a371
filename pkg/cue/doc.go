// Package cue defines the record vocabulary for cue designs: the section
// and inlay record types delivered by the persistence layer, the closed
// enumerations they draw their values from, and the structured Issue type
// that every validator reports with.
package cue
