package mocks

// Confirmer is a mock implementation of ports.Confirmer answering every
// prompt with a fixed response.
type Confirmer struct {
	Answer  bool
	Prompts []string
}

// Confirm records the prompt and returns the configured answer.
func (m *Confirmer) Confirm(prompt string) bool {
	m.Prompts = append(m.Prompts, prompt)
	return m.Answer
}
