// Package validation checks a form.Snapshot before submission.
//
// Three layers cooperate: FieldValidator classifies design energy figures
// against the reference ranges, ValidateRows applies required-field and
// geometry rules to the significant rows of one section, and Aggregator runs
// both over a whole snapshot in wizard order. The result is rebuilt from
// scratch on every call; nothing is patched incrementally.
//
// Required-field and geometry failures are blocking errors. Range and
// plausibility findings are warnings and never block, whatever their level.
package validation
