package liftoff

// Titler sets the title of the current process.
type Titler interface {
	SetTitle(title string) error
}

// TitlerFunc adapts a function to the Titler interface.
type TitlerFunc func(title string) error

// SetTitle calls f(title).
func (f TitlerFunc) SetTitle(title string) error {
	return f(title)
}
