package cli

import "rncheck/internal/config"

// Flags holds command-line flags
type Flags struct {
	Root       string
	MetroURL   string
	ConfigFile string
	Only       string
	Progress   bool
	NoColor    bool
	Verbose    bool
	History    string
	Limit      int
	Focused    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Root:       f.Root,
		MetroURL:   f.MetroURL,
		ConfigFile: f.ConfigFile,
		Only:       f.Only,
		Progress:   f.Progress,
		NoColor:    f.NoColor,
		Verbose:    f.Verbose,
		History:    f.History,
		Limit:      f.Limit,
	}
}
