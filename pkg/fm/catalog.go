package fm

// FontEntry describes one installable font family
type FontEntry struct {
	Name        string   // Display name, unique within the catalog
	AssetName   string   // Release archive filename
	Description string   // Free text
	Variants    []string // Style names, display only
	SizeMB      float64  // Approximate download size, display only
}

var catalog = []FontEntry{
	{
		Name:        "FiraCode Nerd Font",
		AssetName:   "FiraCode.zip",
		Description: "Monospaced font with programming ligatures",
		Variants:    []string{"Regular", "Bold", "Light"},
		SizeMB:      2.1,
	},
	{
		Name:        "Hack Nerd Font",
		AssetName:   "Hack.zip",
		Description: "A typeface designed for source code",
		Variants:    []string{"Regular", "Bold", "Italic"},
		SizeMB:      1.8,
	},
	{
		Name:        "JetBrainsMono Nerd Font",
		AssetName:   "JetBrainsMono.zip",
		Description: "Typeface for developers by JetBrains",
		Variants:    []string{"Regular", "Bold", "Italic"},
		SizeMB:      2.3,
	},
	{
		Name:        "SourceCodePro Nerd Font",
		AssetName:   "SourceCodePro.zip",
		Description: "Monospaced font family by Adobe",
		Variants:    []string{"Regular", "Bold", "Light"},
		SizeMB:      1.9,
	},
	{
		Name:        "DejaVuSansMono Nerd Font",
		AssetName:   "DejaVuSansMono.zip",
		Description: "Monospaced version of DejaVu Sans",
		Variants:    []string{"Regular", "Bold", "Oblique"},
		SizeMB:      1.5,
	},
	{
		Name:        "CascadiaCode Nerd Font",
		AssetName:   "CascadiaCode.zip",
		Description: "Microsoft's programming font with ligatures",
		Variants:    []string{"Regular", "SemiLight", "Light"},
		SizeMB:      2.0,
	},
	{
		Name:        "Meslo Nerd Font",
		AssetName:   "Meslo.zip",
		Description: "Customized version of Apple's Menlo font",
		Variants:    []string{"Regular", "Bold", "Italic"},
		SizeMB:      1.7,
	},
}

// Catalog returns the fixed, ordered list of available fonts.
// Each call returns a fresh copy that callers may modify.
func Catalog() []FontEntry {
	entries := make([]FontEntry, len(catalog))
	for i, e := range catalog {
		e.Variants = append([]string(nil), e.Variants...)
		entries[i] = e
	}
	return entries
}
