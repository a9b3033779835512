package anim

// A Static is a Mode that shows the text unchanged in a single frame.
type Static struct{}

func (Static) Frames(text string) int { return 1 }

func (Static) Render(text string, progress float64) string { return text }
