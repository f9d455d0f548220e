package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Fresnel returns the fraction of light reflected at a dielectric boundary with
// the given refractive index, averaging the s- and p-polarized reflectances.
// The normal points out of the medium; when the incident ray travels along it
// the ray is exiting and the indices are swapped. Returns 1 on total internal
// reflection.
func Fresnel(incident, normal core.Vec3, index float64) float64 {
	cosI := incident.Dot(normal)
	etaI, etaT := 1.0, index
	if cosI > 0 {
		etaI, etaT = etaT, etaI
	}

	sinT := etaI / etaT * math.Sqrt(math.Max(0, 1-cosI*cosI))
	if sinT > 1 {
		return 1
	}

	cosT := math.Sqrt(math.Max(0, 1-sinT*sinT))
	cosI = math.Abs(cosI)
	rs := (etaT*cosI - etaI*cosT) / (etaT*cosI + etaI*cosT)
	rp := (etaI*cosI - etaT*cosT) / (etaI*cosI + etaT*cosT)
	return (rs*rs + rp*rp) / 2
}
