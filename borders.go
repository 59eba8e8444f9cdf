package widgetlist

// BorderSet defines the glyphs used to draw a box frame.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

func newBorderSet(horizontal, vertical, topLeft, topRight, bottomLeft, bottomRight string) BorderSet {
	return BorderSet{
		Top:         horizontal,
		Bottom:      horizontal,
		Left:        vertical,
		Right:       vertical,
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}
}

// BorderSetHidden reserves the border cells but draws blanks.
func BorderSetHidden() BorderSet {
	return newBorderSet(" ", " ", " ", " ", " ", " ")
}

func BorderSetPlain() BorderSet {
	return newBorderSet(
		BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightDownAndRight, BoxDrawingsLightDownAndLeft,
		BoxDrawingsLightUpAndRight, BoxDrawingsLightUpAndLeft,
	)
}

func BorderSetRound() BorderSet {
	return newBorderSet(
		BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightArcDownAndRight, BoxDrawingsLightArcDownAndLeft,
		BoxDrawingsLightArcUpAndRight, BoxDrawingsLightArcUpAndLeft,
	)
}

func BorderSetThick() BorderSet {
	return newBorderSet(
		BoxDrawingsHeavyHorizontal, BoxDrawingsHeavyVertical,
		BoxDrawingsHeavyDownAndRight, BoxDrawingsHeavyDownAndLeft,
		BoxDrawingsHeavyUpAndRight, BoxDrawingsHeavyUpAndLeft,
	)
}

func BorderSetDouble() BorderSet {
	return newBorderSet(
		BoxDrawingsDoubleHorizontal, BoxDrawingsDoubleVertical,
		BoxDrawingsDoubleDownAndRight, BoxDrawingsDoubleDownAndLeft,
		BoxDrawingsDoubleUpAndRight, BoxDrawingsDoubleUpAndLeft,
	)
}

// BorderSetByName returns the border set with the given name: "plain",
// "round", "thick", "double", or "hidden".
func BorderSetByName(name string) (BorderSet, bool) {
	switch name {
	case "plain", "":
		return BorderSetPlain(), true
	case "round":
		return BorderSetRound(), true
	case "thick":
		return BorderSetThick(), true
	case "double":
		return BorderSetDouble(), true
	case "hidden":
		return BorderSetHidden(), true
	}
	return BorderSet{}, false
}

type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
