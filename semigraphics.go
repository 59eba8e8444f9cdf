package widgetlist

// Semigraphics used by the primitives of this package. Using strings with \u
// escapes to keep the source ASCII-safe.
const (
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	BoxDrawingsLightHorizontal      = "\u2500" // ─
	BoxDrawingsHeavyHorizontal      = "\u2501" // ━
	BoxDrawingsLightVertical        = "\u2502" // │
	BoxDrawingsHeavyVertical        = "\u2503" // ┃
	BoxDrawingsLightDownAndRight    = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight    = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft     = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft     = "\u2513" // ┓
	BoxDrawingsLightUpAndRight      = "\u2514" // └
	BoxDrawingsHeavyUpAndRight      = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft       = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft       = "\u251b" // ┛
	BoxDrawingsDoubleHorizontal     = "\u2550" // ═
	BoxDrawingsDoubleVertical       = "\u2551" // ║
	BoxDrawingsDoubleDownAndRight   = "\u2554" // ╔
	BoxDrawingsDoubleDownAndLeft    = "\u2557" // ╗
	BoxDrawingsDoubleUpAndRight     = "\u255a" // ╚
	BoxDrawingsDoubleUpAndLeft      = "\u255d" // ╝
	BoxDrawingsLightArcDownAndRight = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft  = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft    = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight   = "\u2570" // ╰

	BlockUpperHalfBlock          = "\u2580" // ▀
	BlockLowerOneEighthBlock     = "\u2581" // ▁
	BlockLowerOneQuarterBlock    = "\u2582" // ▂
	BlockLowerThreeEighthsBlock  = "\u2583" // ▃
	BlockLowerHalfBlock          = "\u2584" // ▄
	BlockLowerFiveEighthsBlock   = "\u2585" // ▅
	BlockLowerThreeQuartersBlock = "\u2586" // ▆
	BlockLowerSevenEighthsBlock  = "\u2587" // ▇
	BlockFullBlock               = "\u2588" // █
	BlockUpperOneEighthBlock     = "\u2594" // ▔
)
