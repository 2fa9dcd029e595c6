package ports

// Confirmer asks the operator for consent before a destructive batch.
// Implementations decide what counts as an affirmative answer; a false
// return cancels the batch with no side effects.
type Confirmer interface {
	Confirm(prompt string) bool
}
