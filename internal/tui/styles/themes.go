package styles

// NewDarkTheme creates the default skim theme: deep sea blues with a
// sail-white foreground.
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "skim-dark",
		IsDark: true,

		// Brand colors
		Primary:   ParseHex("#1B6CA8"), // deep sea blue
		Secondary: ParseHex("#5AB1BB"), // shallow teal
		Accent:    ParseHex("#F5B841"), // buoy yellow

		// Background colors
		BgBase:      ParseHex("#16212B"),
		BgSubtle:    ParseHex("#1F2E3C"),
		BgHighlight: ParseHex("#2C4257"),

		// Foreground colors
		FgBase:     ParseHex("#E8EEF2"), // sail white
		FgMuted:    ParseHex("#9BAAB5"),
		FgSubtle:   ParseHex("#6B7A85"),
		FgInverted: ParseHex("#16212B"),

		// Border colors
		Border:      ParseHex("#34495E"),
		BorderFocus: ParseHex("#F5B841"),

		// Semantic colors
		Success: ParseHex("#2ECC71"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),

		// Accent palette
		Blue:      ParseHex("#3498DB"),
		BlueLight: ParseHex("#6CB6E8"),
		Green:     ParseHex("#2ECC71"),
		Yellow:    ParseHex("#F1C40F"),
		Purple:    ParseHex("#9B59B6"),
		Orange:    ParseHex("#E67E22"),
	}
}

// NewLightTheme creates the light counterpart for pale terminals.
func NewLightTheme() *Theme {
	return &Theme{
		Name:   "skim-light",
		IsDark: false,

		// Brand colors
		Primary:   ParseHex("#14537F"),
		Secondary: ParseHex("#2E8A96"),
		Accent:    ParseHex("#C28A16"),

		// Background colors
		BgBase:      ParseHex("#FAFBFC"),
		BgSubtle:    ParseHex("#EDF1F4"),
		BgHighlight: ParseHex("#D9E4ED"),

		// Foreground colors
		FgBase:     ParseHex("#20303D"),
		FgMuted:    ParseHex("#5A6B77"),
		FgSubtle:   ParseHex("#8A99A5"),
		FgInverted: ParseHex("#FAFBFC"),

		// Border colors
		Border:      ParseHex("#C3CED6"),
		BorderFocus: ParseHex("#C28A16"),

		// Semantic colors
		Success: ParseHex("#1E8E4E"),
		Error:   ParseHex("#C0392B"),
		Warning: ParseHex("#B9770E"),
		Info:    ParseHex("#2471A3"),

		// Accent palette
		Blue:      ParseHex("#2471A3"),
		BlueLight: ParseHex("#3E8BC4"),
		Green:     ParseHex("#1E8E4E"),
		Yellow:    ParseHex("#B9A21B"),
		Purple:    ParseHex("#7D3C98"),
		Orange:    ParseHex("#CA6F1E"),
	}
}
