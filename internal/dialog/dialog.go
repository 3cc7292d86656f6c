// Package dialog decouples lifecycle operations from how confirmations and
// prompts are rendered.
package dialog

// Prompter is the request/response surface for user confirmation steps.
// Implementations must not have side effects on the record store; a cancelled
// dialog means the pending operation performs no writes.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(message string) (bool, error)
	// Prompt asks for a free-text value. ok is false when the user cancelled.
	Prompt(message string) (value string, ok bool, err error)
}
