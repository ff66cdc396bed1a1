package overlap

// Preset is a named working-hours window offered by pickers.
type Preset struct {
	Name   string `json:"name"`
	Window Window `json:"window"`
}

// Presets returns the built-in working-hours presets, in display order.
func Presets() []Preset {
	return []Preset{
		{Name: "Morning", Window: Window{Start: 9, End: 12}},
		{Name: "Workday", Window: Window{Start: 9, End: 17}},
		{Name: "Evening", Window: Window{Start: 17, End: 21}},
		{Name: "All day", Window: Window{Start: 0, End: 24}},
	}
}

// PresetByName looks up a preset by its display name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// DefaultWindow is the working window assumed when a side specifies none.
var DefaultWindow = Window{Start: 9, End: 17}

// Swap exchanges the two sides of a conversion: zones and their windows move
// together so each zone keeps its own working hours.
func Swap(fromZone, toZone string, fromWin, toWin Window) (string, string, Window, Window) {
	return toZone, fromZone, toWin, fromWin
}
