package render

import "github.com/chazu/cueform/pkg/geometry"

// DefaultSampleResolution is the axial spacing of profile samples, inches.
const DefaultSampleResolution = 0.1

// Sample is one profile measurement for non-visual consumers.
type Sample struct {
	PositionIn float64 `json:"x_position_in"`
	RadiusMM   float64 `json:"radius_mm"`
	DiameterMM float64 `json:"diameter_mm"`
}

// Samples walks the design at DefaultSampleResolution and returns the
// profile measurements. Sample positions that fall outside every section
// (gaps in an invalid design) are silently skipped rather than failing the
// whole request.
func Samples(d *geometry.Design) []Sample {
	return SamplesAt(d, DefaultSampleResolution)
}

// SamplesAt samples the design profile at the given axial resolution.
func SamplesAt(d *geometry.Design, resolution float64) []Sample {
	sections := d.Sections()
	if len(sections) == 0 || resolution <= 0 {
		return nil
	}

	start := sections[0].Start.AxialIn
	end := sections[len(sections)-1].End.AxialIn
	const eps = 1e-9

	var samples []Sample
	for i := 0; ; i++ {
		x := start + float64(i)*resolution
		if x > end+eps {
			break
		}
		if x > end {
			x = end // clamp accumulated float error at the tail
		}
		radius, err := d.RadiusAt(x)
		if err != nil {
			continue
		}
		samples = append(samples, Sample{
			PositionIn: x,
			RadiusMM:   radius,
			DiameterMM: radius * 2,
		})
	}
	return samples
}
