package sfx

import (
	"path/filepath"

	"github.com/ankogit/sfxgen/internal/audio"
)

// Sound is a named tone rendered to <name>.wav
type Sound struct {
	Name      string
	Frequency float64 // Hz
	Duration  float64 // seconds
}

// Catalog lists the game sound effects in generation order
var Catalog = []Sound{
	{Name: "jump", Frequency: 440, Duration: 0.2},
	{Name: "collect", Frequency: 880, Duration: 0.3},
	{Name: "death", Frequency: 220, Duration: 0.5},
}

// ByName returns the catalog entry with the given name, or nil
func ByName(name string) *Sound {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i]
		}
	}
	return nil
}

// Request builds the tone request for this sound
func (s Sound) Request(sampleRate int, fadeOut bool) audio.ToneRequest {
	req := audio.NewToneRequest(s.Frequency, s.Duration, sampleRate)
	req.FadeOut = fadeOut
	return req
}

// Path returns the output file path inside dir
func (s Sound) Path(dir string) string {
	return filepath.Join(dir, s.Name+".wav")
}
