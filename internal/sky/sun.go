package sky

import (
	"math"

	vmath "github.com/atlaslab/cinemap/pkg/math"
)

// SunDirection derives a normalized light direction from the cycle phase. The
// sun sweeps a full revolution per cycle; its elevation follows the day curve
// and drops below the horizon at night.
func SunDirection(phase float64) vmath.Vec3 {
	progress := phase / CycleLength
	angle := progress * 2 * math.Pi

	longitude := angle
	latitude := math.Sin(angle) * math.Pi / 2 // elevation, [-90, 90] degrees

	// Spherical to Cartesian: longitude rotates around Y, latitude is
	// elevation from the horizon.
	return vmath.Vec3{
		X: math.Cos(latitude) * math.Sin(longitude),
		Y: math.Sin(latitude),
		Z: math.Cos(latitude) * math.Cos(longitude),
	}
}
