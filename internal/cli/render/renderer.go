package render

// Renderer prints a use case result
type Renderer[T any] interface {
	Render(result T) error
}
