package chatbot

import "fmt"

// EchoGenerator is a stub generator that echoes the question back. It stands
// in for a real inference backend and keeps chat turns deterministic.
type EchoGenerator struct{}

func NewEchoGenerator() *EchoGenerator {
	return &EchoGenerator{}
}

func (g *EchoGenerator) Name() string {
	return "chatbot"
}

func (g *EchoGenerator) Generate(question string) (string, error) {
	return fmt.Sprintf("This is a sample chatbot answer for the question: %s", question), nil
}
