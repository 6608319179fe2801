package config

// Config defines window geometry and display settings for the browser UI.
type Config struct {
	Title        string
	WindowWidth  float32
	WindowHeight float32
	ShowHeaders  bool
	ShowStatus   bool
}

// DefaultConfig returns a configuration matching the stock browser window:
// 500x200, column headers and status line enabled.
func DefaultConfig() *Config {
	return &Config{
		Title:        "Shot Version Browser",
		WindowWidth:  500,
		WindowHeight: 200,
		ShowHeaders:  true,
		ShowStatus:   true,
	}
}
