package types

// Script is one daemon-side script as reported by the script component.
// Enabled is the daemon's string boolean, passed through as received.
type Script struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Engine  string `json:"engine"`
	Enabled string `json:"enabled"`
}
