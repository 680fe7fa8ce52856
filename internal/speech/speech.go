// Package speech reads words aloud through an external text-to-speech
// program and remembers which voice the player chose.
package speech

// Speaker says text without waiting for it to finish.
type Speaker interface {
	Speak(text string)
}

// Nop is a Speaker that stays silent.
type Nop struct{}

func (Nop) Speak(string) {}

// Func adapts a function to Speaker.
type Func func(text string)

func (f Func) Speak(text string) { f(text) }
