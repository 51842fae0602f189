// Package form models the raw wizard input: a building record plus one typed
// row struct per repeated section. Cells hold user text verbatim (Value) and
// are addressed by FieldPath strings such as "building.region" or
// "windows.0.window_type". Struct tags carry the display label, input kind,
// unit and option list used by prompts, so each section has exactly one field
// set and unknown keys are rejected instead of silently dropped.
package form
