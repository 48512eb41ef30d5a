package filevoy

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor   tcell.Color
	FocusedGraphicsColor tcell.Color

	BlurBorderColor   tcell.Color
	BlurGraphicsColor tcell.Color

	FocusedSelectedTextStyle tcell.Style
	BlurredSelectedTextStyle tcell.Style

	NoticeColor   tcell.Color
	ErrorColor    tcell.Color
	DisabledColor tcell.Color
}

var Style = Styles{
	FocusedBorderColor:   tcell.ColorCornflowerBlue,
	FocusedGraphicsColor: tcell.ColorWhite,

	BlurBorderColor:   tcell.ColorGray,
	BlurGraphicsColor: tcell.ColorGray,

	FocusedSelectedTextStyle: tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorWhiteSmoke),
	BlurredSelectedTextStyle: tcell.StyleDefault.
		Foreground(tcell.ColorWhiteSmoke).
		Background(tcell.ColorDarkSlateGray),

	NoticeColor:   tcell.ColorSlateGray,
	ErrorColor:    tcell.ColorOrangeRed,
	DisabledColor: tcell.ColorIndianRed,
}
