package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconFile      = "" // file
	IconFolder    = "" // folder
	IconWorkspace = "" // sitemap
	IconConfig    = "" // cog
	IconCheck     = "" // check
	IconX         = "" // times
	IconInfo      = "" // info circle
	IconWindow    = "" // window maximize
)

const (
	cursorEmpty    = "  "
	cursorSelected = "▸ " // ▸ Black right-pointing small triangle
)
