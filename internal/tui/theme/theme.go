// Package theme defines the selectable color palettes.
package theme

import "github.com/charmbracelet/lipgloss"

type Palette struct {
	Border        lipgloss.Color
	HeaderText    lipgloss.Color
	Highlight     lipgloss.Color
	ConfirmBorder lipgloss.Color
	GitBranch     lipgloss.Color
	GitClean      lipgloss.Color
	GitDirty      lipgloss.Color
	NoGit         lipgloss.Color
	Text          lipgloss.Color
	Surface       lipgloss.Color
	Error         lipgloss.Color
}

const Default = "Darcula (default)"

// Names lists the palettes in menu order.
var Names = []string{
	Default,
	"Catppuccin Mocha",
	"Dracula",
	"Gruvbox",
	"Nord",
	"Solarized Dark",
	"One Dark",
	"Tokyo Night",
	"Everforest",
	"Rose Pine",
	"Ayu Mirage",
}

var palettes = map[string]Palette{
	Default: {
		Border:        "#606366",
		HeaderText:    "#ffc66d",
		Highlight:     "#cc7832",
		ConfirmBorder: "#ffc66d",
		GitBranch:     "#9876aa",
		GitClean:      "#6a8759",
		GitDirty:      "#cc7832",
		NoGit:         "#808080",
		Text:          "#a9b7c6",
		Surface:       "#2b2b2b",
		Error:         "#ff6b68",
	},
	"Catppuccin Mocha": {
		Border:        "#585b70",
		HeaderText:    "#f9e2af",
		Highlight:     "#cba6f7",
		ConfirmBorder: "#f9e2af",
		GitBranch:     "#89b4fa",
		GitClean:      "#a6e3a1",
		GitDirty:      "#fab387",
		NoGit:         "#6c7086",
		Text:          "#cdd6f4",
		Surface:       "#1e1e2e",
		Error:         "#f38ba8",
	},
	"Dracula": {
		Border:        "#6272a4",
		HeaderText:    "#f1fa8c",
		Highlight:     "#bd93f9",
		ConfirmBorder: "#f1fa8c",
		GitBranch:     "#8be9fd",
		GitClean:      "#50fa7b",
		GitDirty:      "#ffb86c",
		NoGit:         "#6272a4",
		Text:          "#f8f8f2",
		Surface:       "#282a36",
		Error:         "#ff5555",
	},
	"Gruvbox": {
		Border:        "#928374",
		HeaderText:    "#fabd2f",
		Highlight:     "#fe8019",
		ConfirmBorder: "#fabd2f",
		GitBranch:     "#83a598",
		GitClean:      "#b8bb26",
		GitDirty:      "#fe8019",
		NoGit:         "#928374",
		Text:          "#ebdbb2",
		Surface:       "#282828",
		Error:         "#fb4934",
	},
	"Nord": {
		Border:        "#4c566a",
		HeaderText:    "#ebcb8b",
		Highlight:     "#88c0d0",
		ConfirmBorder: "#ebcb8b",
		GitBranch:     "#81a1c1",
		GitClean:      "#a3be8c",
		GitDirty:      "#d08770",
		NoGit:         "#4c566a",
		Text:          "#d8dee9",
		Surface:       "#2e3440",
		Error:         "#bf616a",
	},
	"Solarized Dark": {
		Border:        "#586e75",
		HeaderText:    "#b58900",
		Highlight:     "#268bd2",
		ConfirmBorder: "#b58900",
		GitBranch:     "#6c71c4",
		GitClean:      "#859900",
		GitDirty:      "#cb4b16",
		NoGit:         "#586e75",
		Text:          "#839496",
		Surface:       "#002b36",
		Error:         "#dc322f",
	},
	"One Dark": {
		Border:        "#5c6370",
		HeaderText:    "#e5c07b",
		Highlight:     "#c678dd",
		ConfirmBorder: "#e5c07b",
		GitBranch:     "#61afef",
		GitClean:      "#98c379",
		GitDirty:      "#d19a66",
		NoGit:         "#5c6370",
		Text:          "#abb2bf",
		Surface:       "#282c34",
		Error:         "#e06c75",
	},
	"Tokyo Night": {
		Border:        "#565f89",
		HeaderText:    "#e0af68",
		Highlight:     "#bb9af7",
		ConfirmBorder: "#e0af68",
		GitBranch:     "#7aa2f7",
		GitClean:      "#9ece6a",
		GitDirty:      "#ff9e64",
		NoGit:         "#565f89",
		Text:          "#c0caf5",
		Surface:       "#1a1b26",
		Error:         "#f7768e",
	},
	"Everforest": {
		Border:        "#859289",
		HeaderText:    "#dbbc7f",
		Highlight:     "#a7c080",
		ConfirmBorder: "#dbbc7f",
		GitBranch:     "#7fbbb3",
		GitClean:      "#a7c080",
		GitDirty:      "#e69875",
		NoGit:         "#859289",
		Text:          "#d3c6aa",
		Surface:       "#2d353b",
		Error:         "#e67e80",
	},
	"Rose Pine": {
		Border:        "#6e6a86",
		HeaderText:    "#f6c177",
		Highlight:     "#c4a7e7",
		ConfirmBorder: "#f6c177",
		GitBranch:     "#9ccfd8",
		GitClean:      "#31748f",
		GitDirty:      "#ebbcba",
		NoGit:         "#6e6a86",
		Text:          "#e0def4",
		Surface:       "#191724",
		Error:         "#eb6f92",
	},
	"Ayu Mirage": {
		Border:        "#5c6773",
		HeaderText:    "#ffd580",
		Highlight:     "#ffcc66",
		ConfirmBorder: "#ffd580",
		GitBranch:     "#5ccfe6",
		GitClean:      "#bae67e",
		GitDirty:      "#ffa759",
		NoGit:         "#5c6773",
		Text:          "#cbccc6",
		Surface:       "#1f2430",
		Error:         "#ff3333",
	},
}

// Get returns the palette for a theme name, falling back to the default for
// unknown names.
func Get(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[Default]
}
