// Package visuals animates calming particle fields on a character grid.
package visuals

// Kind identifies an animation.
type Kind string

const (
	Breathing Kind = "breathing"
	Bubbles   Kind = "bubbles"
	Colors    Kind = "colors"
	Stars     Kind = "stars"
	Mandala   Kind = "mandala"
	Rain      Kind = "rain"
	Snow      Kind = "snow"
	Fireflies Kind = "fireflies"
)

// Kinds lists every animation in display order.
var Kinds = []Kind{Breathing, Bubbles, Colors, Stars, Mandala, Rain, Snow, Fireflies}

// Title returns the card title of k.
func (k Kind) Title() string {
	switch k {
	case Breathing:
		return "Guided breathing"
	case Bubbles:
		return "Bubbles"
	case Colors:
		return "Floating colors"
	case Stars:
		return "Starry sky"
	case Mandala:
		return "Living mandala"
	case Rain:
		return "Rain"
	case Snow:
		return "Snow"
	case Fireflies:
		return "Fireflies"
	default:
		return string(k)
	}
}

// Valid reports whether k is a known animation.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}
