package thinggen

// Config controls LLMGenerator.
type Config struct {
	// Validators run in order on every suggestion; the first failure
	// rejects it.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	DefaultCount int
	MaxCount     int

	// MaxExclude caps how many existing words are listed in the prompt.
	MaxExclude int
}

// DefaultConfig returns the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&LettersValidator{},
			&DedupValidator{},
		},
		MaxTokens:    1024,
		Temperature:  0.8,
		DefaultCount: 5,
		MaxCount:     20,
		MaxExclude:   60,
	}
}
