package anim

import (
	"unicode/utf8"

	"github.com/fogleman/ease"

	"github.com/jacs121/text-animator/util"
)

// A Bounce is a Mode that assembles the text from both ends at once. Runes
// land alternately from the left and right edge and converge on the
// center; at progress 1 the text stands complete in its original order.
type Bounce struct{}

func (Bounce) Frames(text string) int {
	n := utf8.RuneCountInString(text)
	if n < 1 {
		return 1
	}
	return n
}

func (Bounce) Render(text string, progress float64) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}

	placed := int(ease.InOutQuad(util.Clamp01(progress)) * float64(n))
	if progress >= 1 {
		placed = n
	}

	out := make([]rune, n)
	for i := range out {
		out[i] = ' '
	}
	for k := 0; k < placed; k++ {
		if k%2 == 0 {
			i := k / 2
			out[i] = runes[i]
		} else {
			i := n - 1 - k/2
			out[i] = runes[i]
		}
	}
	return string(out)
}
