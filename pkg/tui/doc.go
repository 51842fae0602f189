// Package tui runs the BEI input wizard in a terminal.
//
// The Wizard walks the steps of a wizard.Machine, prompting for the basic
// building information and the rows of each repeated section, and ends on a
// review page that renders the validation summary and submits through a
// submit.Session. Prompts go through a PromptDriver; the default driver is
// backed by survey, and tests script their own.
package tui
