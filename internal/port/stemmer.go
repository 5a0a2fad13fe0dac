package port

// Stemmer reduces a word to its root form.
type Stemmer interface {
	Stem(word string) string

	// Language returns the registry name the stemmer was built for.
	Language() string
}
