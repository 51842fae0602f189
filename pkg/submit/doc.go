// Package submit runs the submission pipeline: local validation, payload
// construction, an optional contract check, the outbound service call and
// failure normalisation, ending in an Outcome that names the wizard step to
// show.
//
// A Session wraps a Submitter for interactive use. It allows one request in
// flight, tags each submission with a ticket and marks answers to abandoned
// submissions as stale so callers never apply them.
package submit
