// Package payload converts a form.Snapshot into the request body accepted by
// the external compute and report services.
//
// Cells are coerced by the kind declared on their form field: text and select
// cells become strings, number cells floats, integer cells ints, and count
// cells ints defaulting to 1. Blank or unparseable cells are omitted rather
// than sent empty. Only significant rows are kept, and the sections exempt for
// small buildings are left out entirely when the snapshot is small. Keys are
// written in declaration order, so Build is deterministic.
package payload
