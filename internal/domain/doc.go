// Package domain models earthquake events from the USGS real-time feeds.
//
// # Data Source
//
// Events come from the USGS earthquake summary GeoJSON feeds at
// https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/, one document
// per (severity, window) pair, e.g. "all_month.geojson". Each feature
// carries geometry coordinates [lon, lat, depth-km] and properties with the
// magnitude, place description, and event time in epoch milliseconds.
// Magnitude, depth, and time are all nullable in the feed; missing or
// non-numeric values become nil here and never abort a pass.
//
// # Richter Classification
//
// Magnitudes map to a nine-tier label set used throughout the dashboard:
//
//	m < 2    micro     | 5–5.9  moderate | 8–9.9  epic
//	2–3.9    minor     | 6–6.9  strong   | > 9.9  legendary
//	4–4.9    light     | 7–7.9  major    | nil    unknown
//
// Tiers are continuous: a fractional value between 3.9 and 4 takes the
// lower tier, while an exact 4.0 is light. The epic tier ends exactly at
// 9.9; anything above is legendary. See [Classify].
//
// # Display Conventions
//
// Dates render in Spanish ("14 de Diciembre de 2025"); the request-date
// line uses Puerto Rico local time (AST, UTC-4, no DST). The Puerto Rico
// zone is the bounding box lat 17.6–18.7, lon -67.8 to -64.8, inclusive,
// which covers the island, Vieques, Culebra, and the Puerto Rico Trench
// activity to the north.
package domain
