package constants

// Presets are named disc configurations layered on top of
// DefaultDoleConstants.
var Presets = map[string]DoleConstants{
	"sol-like":    solLikePreset(),
	"dense-disc":  denseDiscPreset(),
	"sparse-disc": sparseDiscPreset(),
}

func solLikePreset() DoleConstants {
	return DefaultDoleConstants()
}

func denseDiscPreset() DoleConstants {
	c := DefaultDoleConstants()
	c.DustDensityCoeff *= 3.0
	c.KCoeff = 75.0
	return c
}

func sparseDiscPreset() DoleConstants {
	c := DefaultDoleConstants()
	c.DustDensityCoeff *= 0.35
	c.OutermostPlanet = 30.0
	return c
}

// GetPreset looks up a named preset, returning ok=false for an unknown name.
func GetPreset(name string) (DoleConstants, bool) {
	c, ok := Presets[name]
	return c, ok
}

// ListPresets returns every preset name.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
