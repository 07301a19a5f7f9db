package llm

import "context"

// MockClient allows tests to run without a real model.
type MockClient struct {
	Response        string
	Err             error
	LastInstruction string
	LastPrompt      string
	Calls           int
}

func (m *MockClient) Generate(ctx context.Context, instruction, prompt string) (string, error) {
	m.Calls++
	m.LastInstruction = instruction
	m.LastPrompt = prompt
	return m.Response, m.Err
}
