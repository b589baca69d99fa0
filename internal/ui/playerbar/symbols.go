package playerbar

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
)
