package material

// Surface describes how light interacts with a material. The set of surfaces is
// closed: Diffuse, Specular and Transparent are the only implementations, and the
// integrator switches over them exhaustively.
type Surface interface {
	surface()
}

// Diffuse is a matte Lambertian surface
type Diffuse struct{}

// Specular is a partially mirrored surface
type Specular struct {
	Reflectivity float64 // Fraction of light mirrored, in [0, 1]
}

// Transparent is a dielectric surface that reflects and refracts
type Transparent struct {
	Index        float64 // Refractive index, > 0 (1.5 for glass)
	Transparency float64 // Fraction of light passed on, in [0, 1]
}

func (Diffuse) surface()     {}
func (Specular) surface()    {}
func (Transparent) surface() {}
