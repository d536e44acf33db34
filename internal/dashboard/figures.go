package dashboard

import (
	"fmt"

	"github.com/dereckcolon1-cell/terremoto-app/internal/domain"
)

// Figure is a Plotly-compatible figure payload: the server derives the data
// and layout, the embedded page hands them to Plotly.js unchanged.
type Figure struct {
	Data   []any  `json:"data"`
	Layout Layout `json:"layout"`
}

// Layout carries the subset of Plotly layout options the dashboard uses.
type Layout struct {
	Width        int     `json:"width,omitempty"`
	Height       int     `json:"height,omitempty"`
	Margin       *Margin `json:"margin,omitempty"`
	Mapbox       *Mapbox `json:"mapbox,omitempty"`
	PlotBGColor  string  `json:"plot_bgcolor,omitempty"`
	PaperBGColor string  `json:"paper_bgcolor,omitempty"`
	XAxis        *Axis   `json:"xaxis,omitempty"`
	YAxis        *Axis   `json:"yaxis,omitempty"`
	ShowLegend   *bool   `json:"showlegend,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Mapbox struct {
	Style  string  `json:"style"`
	Center Center  `json:"center"`
	Zoom   float64 `json:"zoom"`
}

type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Axis struct {
	Title string `json:"title,omitempty"`
}

// ColorStop is one (position, color) pair of a Plotly colorscale,
// marshaled as [position, "#rrggbb"].
type ColorStop [2]any

// DepthColorScale is the seven-stop diverging ramp used for magnitude
// coloring: black through blue, cyan, pale yellow, orange, red, dark red.
var DepthColorScale = []ColorStop{
	{0.00, "#000000"},
	{0.18, "#0b2cff"},
	{0.36, "#31b6ff"},
	{0.55, "#fff7b2"},
	{0.72, "#ffb347"},
	{0.88, "#ff3b2f"},
	{1.00, "#2b0000"},
}

// Map rendering constants, matching the reference dashboard.
const (
	mapStyle        = "carto-darkmatter"
	mapHeight       = 520
	maxMarkerSizePx = 8.0
	markerOpacity   = 0.65

	puertoRicoCenterLat = 18.25178
	puertoRicoCenterLon = -66.254512
	puertoRicoZoom      = 7.5

	worldCenterLat = 10.0
	worldCenterLon = 0.0
	worldZoom      = 1.0
)

// Histogram rendering constants.
const (
	histogramWidth  = 350
	histogramHeight = 600
	histogramColor  = "red"
)

type mapTrace struct {
	Type      string    `json:"type"`
	Mode      string    `json:"mode"`
	Lat       []float64 `json:"lat"`
	Lon       []float64 `json:"lon"`
	HoverText []string  `json:"hovertext"`
	HoverInfo string    `json:"hoverinfo"`
	Marker    mapMarker `json:"marker"`
}

type mapMarker struct {
	Size       []float64   `json:"size"`
	SizeRef    float64     `json:"sizeref"`
	SizeMin    float64     `json:"sizemin,omitempty"`
	Color      []*float64  `json:"color"`
	ColorScale []ColorStop `json:"colorscale"`
	CMin       *float64    `json:"cmin,omitempty"`
	CMax       *float64    `json:"cmax,omitempty"`
	Opacity    float64     `json:"opacity"`
	ShowScale  bool        `json:"showscale"`
	ColorBar   *colorBar   `json:"colorbar,omitempty"`
}

type colorBar struct {
	Title    string    `json:"title,omitempty"`
	TickVals []float64 `json:"tickvals,omitempty"`
}

type histogramTrace struct {
	Type   string          `json:"type"`
	X      []float64       `json:"x"`
	Marker histogramMarker `json:"marker"`
}

type histogramMarker struct {
	Color string `json:"color"`
}

// BuildMap derives the map figure: one marker per event, sized by
// MagnitudeSize, colored by MagnitudeColor on the diverging ramp, with
// per-marker hover detail. The view is framed per zone; pinned color ranges
// get a fixed colorbar (see domain.PinColors).
func BuildMap(events []domain.Event, zone domain.Zone, pinned bool) *Figure {
	trace := mapTrace{
		Type:      "scattermapbox",
		Mode:      "markers",
		Lat:       make([]float64, 0, len(events)),
		Lon:       make([]float64, 0, len(events)),
		HoverText: make([]string, 0, len(events)),
		HoverInfo: "text",
		Marker: mapMarker{
			Size:       make([]float64, 0, len(events)),
			Color:      make([]*float64, 0, len(events)),
			ColorScale: DepthColorScale,
			Opacity:    markerOpacity,
			ShowScale:  true,
			ColorBar:   &colorBar{Title: "magnitud"},
		},
	}

	maxSize := 0.0
	for _, e := range events {
		trace.Lat = append(trace.Lat, e.Lat)
		trace.Lon = append(trace.Lon, e.Lon)
		trace.Marker.Size = append(trace.Marker.Size, e.MagnitudeSize)
		trace.Marker.Color = append(trace.Marker.Color, e.MagnitudeColor)
		trace.HoverText = append(trace.HoverText, hoverText(e))
		if e.MagnitudeSize > maxSize {
			maxSize = e.MagnitudeSize
		}
	}

	// Plotly scales marker diameter by size/sizeref; pin the largest
	// magnitude to the maximum visual size.
	trace.Marker.SizeRef = maxSize / maxMarkerSizePx
	if trace.Marker.SizeRef <= 0 {
		trace.Marker.SizeRef = 1
	}

	if pinned {
		cmin, cmax := domain.PinnedColorMin, domain.PinnedColorMax
		trace.Marker.CMin = &cmin
		trace.Marker.CMax = &cmax
		trace.Marker.ColorBar.TickVals = domain.PinnedColorTicks
	}

	center := Center{Lat: worldCenterLat, Lon: worldCenterLon}
	zoom := worldZoom
	if zone == domain.ZonePuertoRico {
		center = Center{Lat: puertoRicoCenterLat, Lon: puertoRicoCenterLon}
		zoom = puertoRicoZoom
	}

	return &Figure{
		Data: []any{trace},
		Layout: Layout{
			Height: mapHeight,
			Margin: &Margin{L: 0, R: 0, T: 30, B: 0},
			Mapbox: &Mapbox{Style: mapStyle, Center: center, Zoom: zoom},
		},
	}
}

func hoverText(e domain.Event) string {
	mag, depth := "N/A", "N/A"
	if e.Magnitude != nil {
		mag = fmt.Sprintf("%.2f", *e.Magnitude)
	}
	if e.Depth != nil {
		depth = fmt.Sprintf("%.2f km", *e.Depth)
	}
	return fmt.Sprintf("%s<br>magnitud: %s<br>lat: %.4f, lon: %.4f<br>%s<br>profundidad: %s",
		e.Place, mag, e.Lat, e.Lon, e.DisplayDate, depth)
}

// BuildMagnitudeHistogram derives the magnitude frequency histogram over
// non-nil magnitudes clamped to >= 0.
func BuildMagnitudeHistogram(events []domain.Event) *Figure {
	return buildHistogram(events, "magnitud", func(e domain.Event) *float64 { return e.Magnitude })
}

// BuildDepthHistogram derives the depth frequency histogram over non-nil
// depths clamped to >= 0.
func BuildDepthHistogram(events []domain.Event) *Figure {
	return buildHistogram(events, "profundidad", func(e domain.Event) *float64 { return e.Depth })
}

func buildHistogram(events []domain.Event, label string, field func(domain.Event) *float64) *Figure {
	xs := make([]float64, 0, len(events))
	for _, e := range events {
		v := field(e)
		if v == nil {
			continue
		}
		x := *v
		if x < 0 {
			x = 0
		}
		xs = append(xs, x)
	}

	showLegend := false
	return &Figure{
		Data: []any{histogramTrace{
			Type:   "histogram",
			X:      xs,
			Marker: histogramMarker{Color: histogramColor},
		}},
		Layout: Layout{
			Width:        histogramWidth,
			Height:       histogramHeight,
			Margin:       &Margin{L: 60, R: 10, T: 20, B: 50},
			PlotBGColor:  "white",
			PaperBGColor: "white",
			XAxis:        &Axis{Title: label},
			YAxis:        &Axis{Title: "count"},
			ShowLegend:   &showLegend,
		},
	}
}
