package envcatalog

type VarInfo struct {
	Category    string
	Name        string
	Description string
	Dynamic     bool
}

func Catalog() []VarInfo {
	return []VarInfo{
		{
			Category:    "Config",
			Name:        "FERN_CONFIG",
			Description: "Path to the global seeds config file (default ~/.fern.config.yaml).",
		},
		{
			Category:    "Config",
			Name:        "FERN_<FLAG>",
			Dynamic:     true,
			Description: "Set any fern CLI flag via environment (hyphens become underscores). Example: FERN_LOG_LEVEL=debug.",
		},
		{
			Category:    "Output",
			Name:        "NO_COLOR",
			Description: "Disable ANSI color output (any non-empty value).",
		},
	}
}
