// Package export renders a finished system for humans: a CSV file via
// gocsv, a styled terminal table via lipgloss, and indented JSON via
// encoding/json.
package export

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/planetgen/internal/accretion"
	"github.com/san-kum/planetgen/internal/ecosphere"
	"github.com/san-kum/planetgen/internal/geometry"
	"github.com/san-kum/planetgen/internal/star"
	"github.com/san-kum/planetgen/internal/units"
	"github.com/san-kum/planetgen/internal/uwp"
)

// PlanetRecord is one row of a rendered system: the raw accretion output
// plus the ecosphere/UWP post-processing.
type PlanetRecord struct {
	Index        int     `csv:"index" json:"index"`
	AxisAU       float64 `csv:"axis_au" json:"axis_au"`
	AxisKm       float64 `csv:"axis_km" json:"axis_km"`
	Eccentricity float64 `csv:"eccentricity" json:"eccentricity"`
	MassEarth    float64 `csv:"mass_earth" json:"mass_earth"`
	MassKg       float64 `csv:"mass_kg" json:"mass_kg"`
	IsGasGiant   bool    `csv:"is_gas_giant" json:"is_gas_giant"`
	Habitable    bool    `csv:"habitable" json:"habitable"`
	Atmosphere   string  `csv:"atmosphere" json:"atmosphere"`
	UWP          string  `csv:"uwp" json:"uwp"`
}

// BuildRecords derives one PlanetRecord per planet in result, running the
// ecosphere/UWP post-processing over each.
func BuildRecords(result *accretion.Result, calc *geometry.Calculator, s star.Star) []PlanetRecord {
	records := make([]PlanetRecord, len(result.Planets))
	for i, p := range result.Planets {
		isGasGiant := calc.IsGasGiant(p)
		records[i] = PlanetRecord{
			Index:        i,
			AxisAU:       p.Axis,
			AxisKm:       units.AUToKm(p.Axis),
			Eccentricity: p.Ecc,
			MassEarth:    units.SolarMassToEarthMass(p.Mass),
			MassKg:       units.SolarMassToKg(p.Mass),
			IsGasGiant:   isGasGiant,
			Habitable:    ecosphere.IsHabitable(p, isGasGiant, s),
			Atmosphere:   ecosphere.SimpleAtmosphere(p, isGasGiant, s),
			UWP:          uwp.Classify(p, isGasGiant, s).String(),
		}
	}
	return records
}

// WriteCSV marshals records to w as CSV, header included.
func WriteCSV(w io.Writer, records []PlanetRecord) error {
	return gocsv.Marshal(records, w)
}
