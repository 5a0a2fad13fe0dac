package port

// Tokenizer splits raw text into normalized word tokens.
type Tokenizer interface {
	// Tokenize returns the tokens of text in order. Empty text is an error.
	Tokenize(text string) ([]string, error)
}
