// Package chatbot provides the answer generator behind the chat endpoint.
package chatbot

// Generator produces an answer for a user question. Implementations must be
// safe for concurrent use.
type Generator interface {
	// Name tags persisted answers with their generator ("generated_by").
	Name() string
	Generate(question string) (string, error)
}
