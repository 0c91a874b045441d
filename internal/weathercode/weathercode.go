// Package weathercode maps WMO weather interpretation codes to display categories.
package weathercode

// Category is a semantic weather condition used to pick icon and image assets.
type Category string

const (
	SunnyDay            Category = "sunny-day"
	ClearNight          Category = "clear-night"
	MostlySunnyDay      Category = "mostly-sunny-day"
	MostlyClearNight    Category = "mostly-clear-night"
	PartlyCloudyDay     Category = "partly-cloudy-day"
	PartlyCloudyNight   Category = "partly-cloudy-night"
	Cloudy              Category = "cloudy"
	HazeFogDustSmoke    Category = "haze-fog-dust-smoke"
	Drizzle             Category = "drizzle"
	SleetHail           Category = "sleet-hail"
	ScatteredShowersDay Category = "scattered-showers-day"
	ScatteredShowersNgt Category = "scattered-showers-night"
	ShowersRain         Category = "showers-rain"
	HeavyRain           Category = "heavy-rain"
	WintryMix           Category = "wintry-mix-rain-snow"
	SnowShowers         Category = "snow-showers-snow"
	Flurries            Category = "flurries"
	HeavySnow           Category = "heavy-snow"
	TstormsDay          Category = "isolated-scattered-tstorms-day"
	TstormsNight        Category = "isolated-scattered-tstorms-night"
	StrongTstorms       Category = "strong-tstorms"
	MostlyCloudyDay     Category = "mostly-cloudy-day"
	MostlyCloudyNight   Category = "mostly-cloudy-night"
)

// variant holds the day and night category for one code. Lighting-invariant
// codes use the same category for both.
type variant struct {
	day, night Category
}

func same(c Category) variant { return variant{day: c, night: c} }

var table = map[int]variant{
	0:  {SunnyDay, ClearNight},
	1:  {MostlySunnyDay, MostlyClearNight},
	2:  {PartlyCloudyDay, PartlyCloudyNight},
	3:  same(Cloudy),
	45: same(HazeFogDustSmoke),
	48: same(HazeFogDustSmoke),
	51: same(Drizzle),
	53: same(Drizzle),
	55: same(Drizzle),
	56: same(SleetHail),
	57: same(SleetHail),
	61: {ScatteredShowersDay, ScatteredShowersNgt},
	63: same(ShowersRain),
	65: same(HeavyRain),
	66: same(WintryMix),
	67: same(WintryMix),
	71: same(SnowShowers),
	73: same(SnowShowers),
	75: same(SnowShowers),
	77: same(Flurries),
	80: {ScatteredShowersDay, ScatteredShowersNgt},
	81: {ScatteredShowersDay, ScatteredShowersNgt},
	82: same(HeavyRain),
	85: same(SnowShowers),
	86: same(HeavySnow),
	95: {TstormsDay, TstormsNight},
	96: same(StrongTstorms),
	99: same(StrongTstorms),
}

var fallback = variant{MostlyCloudyDay, MostlyCloudyNight}

// Classify returns the category for code. Unknown codes map to mostly cloudy.
func Classify(code int, isDay bool) Category {
	v, ok := table[code]
	if !ok {
		v = fallback
	}
	if isDay {
		return v.day
	}
	return v.night
}

// assetNames keeps the historical asset base names, which differ from the
// category name for the clear-sky and partly-cloudy day variants.
var assetNames = map[Category]string{
	SunnyDay:        "sunny",
	MostlySunnyDay:  "mostly_sunny",
	PartlyCloudyDay: "partly_cloudy",
}

func (c Category) asset() string {
	if name, ok := assetNames[c]; ok {
		return name
	}
	out := []byte(c)
	for i := range out {
		if out[i] == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}

// Icon is the small forecast-row asset name.
func (c Category) Icon() string { return "icon_" + c.asset() }

// Image is the large current-conditions asset name.
func (c Category) Image() string { return "image_" + c.asset() }
