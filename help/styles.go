package help

import (
	"github.com/ayn2op/widgetlist"
	"github.com/gdamore/tcell/v3"
)

type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives the help styles from the package theme.
func DefaultStyles() Styles {
	key := tcell.StyleDefault.Foreground(widgetlist.Styles.SecondaryTextColor).Bold(true)
	desc := tcell.StyleDefault.Foreground(widgetlist.Styles.PrimaryTextColor)
	dim := tcell.StyleDefault.Foreground(widgetlist.Styles.TertiaryTextColor).Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
