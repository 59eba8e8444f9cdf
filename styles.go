package widgetlist

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor    tcell.Color // Main background color for primitives.
	ContrastBackgroundColor     tcell.Color // Background of the selected item.
	MoreContrastBackgroundColor tcell.Color // Background of selected bordered items.
	BorderColor                 tcell.Color // Box borders.
	FocusedBorderColor          tcell.Color // Borders of selected bordered items.
	TitleColor                  tcell.Color // Box titles.
	PrimaryTextColor            tcell.Color // Primary text.
	SecondaryTextColor          tcell.Color // Secondary text (e.g. summaries).
	TertiaryTextColor           tcell.Color // Tertiary text (e.g. scroll bar track).
	InverseTextColor            tcell.Color // Text on contrasting backgrounds.
}

// Styles defines the theme for applications. The default is for a black
// background and some basic colors: black, white, yellow, green, and blue.
var Styles = Theme{
	PrimitiveBackgroundColor:    color.Black,
	ContrastBackgroundColor:     color.Blue,
	MoreContrastBackgroundColor: color.White,
	BorderColor:                 color.White,
	FocusedBorderColor:          color.Yellow,
	TitleColor:                  color.White,
	PrimaryTextColor:            color.White,
	SecondaryTextColor:          color.Yellow,
	TertiaryTextColor:           color.Green,
	InverseTextColor:            color.Black,
}
