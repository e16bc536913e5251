package models

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func TestZoneCatalogEntriesLoad(t *testing.T) {
	catalog := ZoneCatalog()
	assert.Len(t, catalog, 17)

	for _, z := range catalog {
		assert.NotEmpty(t, z.Label)
		_, err := time.LoadLocation(z.Zone)
		assert.NoError(t, err, "zone %s should be loadable", z.Zone)
	}
}

func TestZoneCatalogIsACopy(t *testing.T) {
	catalog := ZoneCatalog()
	catalog[0].Zone = "Changed/Zone"

	assert.Equal(t, "America/Los_Angeles", ZoneCatalog()[0].Zone)
	assert.False(t, IsSupportedZone("Changed/Zone"))
}

func TestIsSupportedZone(t *testing.T) {
	assert.True(t, IsSupportedZone("America/Los_Angeles"))
	assert.True(t, IsSupportedZone("Pacific/Auckland"))
	assert.False(t, IsSupportedZone(""))
	assert.False(t, IsSupportedZone("UTC"))
}

func TestZoneLabel(t *testing.T) {
	assert.Equal(t, "Japan (JST)", ZoneLabel("Asia/Tokyo"))
	assert.Equal(t, "Etc/Unknown", ZoneLabel("Etc/Unknown"))
}
