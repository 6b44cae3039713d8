// Package llm provides the text-generation clients backing the AI
// collaborators: meal generation, recipe extraction and shopping list
// categorization all go through the TextGenerator interface.
package llm

import "context"

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
