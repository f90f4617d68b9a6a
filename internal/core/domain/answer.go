package domain

// Answer is the outcome of executing one prompt: the chosen backend
// response plus the context needed to present it.
type Answer struct {
	// Key is the normalised prompt key that was executed.
	Key string

	// Queries are the query strings that were issued, in submission order.
	Queries []string

	// Response is the selected backend response. Never nil: execution
	// paths return ErrNoUsableResult instead of an empty answer.
	Response *SearchResponse
}
