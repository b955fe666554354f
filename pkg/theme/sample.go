package theme

// InfoEntry is one label/value line of system information.
type InfoEntry struct {
	Key   string
	Value string
}

// SampleInfo is the ordered system information shown in previews.
type SampleInfo []InfoEntry

// DefaultSampleInfo returns the static preview data. It is never exported.
func DefaultSampleInfo() SampleInfo {
	return SampleInfo{
		{"os", "Arch Linux"},
		{"kernel", "Linux 6.6.8-arch1-1"},
		{"uptime", "2 days, 14 hours, 32 minutes"},
		{"packages", "1,247 (pacman)"},
		{"shell", "zsh 5.9"},
		{"terminal", "Alacritty"},
		{"cpu", "AMD Ryzen 7 5800X (16) @ 3.8GHz"},
		{"gpu", "NVIDIA GeForce RTX 3070"},
		{"memory", "8.2GB / 32.0GB (26%)"},
		{"disk", "256GB / 1TB (25%)"},
		{"battery", "N/A"},
		{"date", "2024-01-15 14:30:25"},
	}
}
