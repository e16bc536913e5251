package models

// Zone is one entry of the supported time zone catalog
type Zone struct {
	Label string `json:"label"`
	Zone  string `json:"zone"`
}

var zoneCatalog = []Zone{
	{Label: "Pacific Time (PT)", Zone: "America/Los_Angeles"},
	{Label: "Mountain Time (MT)", Zone: "America/Denver"},
	{Label: "Central Time (CT)", Zone: "America/Chicago"},
	{Label: "Eastern Time (ET)", Zone: "America/New_York"},
	{Label: "Atlantic Time (AT)", Zone: "America/Halifax"},
	// South America
	{Label: "Brazil (BRT)", Zone: "America/Sao_Paulo"},
	{Label: "Argentina (ART)", Zone: "America/Argentina/Buenos_Aires"},
	{Label: "Chile (CLT)", Zone: "America/Santiago"},
	{Label: "Peru (PET)", Zone: "America/Lima"},
	{Label: "Colombia (COT)", Zone: "America/Bogota"},
	{Label: "Venezuela (VET)", Zone: "America/Caracas"},
	// Rest of world
	{Label: "British Time (BST/GMT)", Zone: "Europe/London"},
	{Label: "Central European (CET)", Zone: "Europe/Paris"},
	{Label: "Eastern European (EET)", Zone: "Europe/Kiev"},
	{Label: "Japan (JST)", Zone: "Asia/Tokyo"},
	{Label: "Australia Eastern (AEST)", Zone: "Australia/Sydney"},
	{Label: "New Zealand (NZST)", Zone: "Pacific/Auckland"},
}

var zonesByID = func() map[string]Zone {
	m := make(map[string]Zone, len(zoneCatalog))
	for _, z := range zoneCatalog {
		m[z.Zone] = z
	}
	return m
}()

// ZoneCatalog returns a copy of the supported zones in display order
func ZoneCatalog() []Zone {
	out := make([]Zone, len(zoneCatalog))
	copy(out, zoneCatalog)
	return out
}

// IsSupportedZone checks if zone is part of the catalog
func IsSupportedZone(zone string) bool {
	_, ok := zonesByID[zone]
	return ok
}

// ZoneLabel returns the display label for zone, or zone itself when unknown
func ZoneLabel(zone string) string {
	if z, ok := zonesByID[zone]; ok {
		return z.Label
	}
	return zone
}
