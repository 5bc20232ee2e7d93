package donut

import "fmt"

// Brightness evaluates directional Lambertian lighting:
//
//	-dot(normalize(light), normalize(normal))
//
// light is the direction the light travels. A normal pointing back at the
// source gives +1, a normal along light gives -1. The result is not clamped.
func Brightness(normal, light Vec3) (float64, error) {
	l, err := Normalize(light)
	if err != nil {
		return 0, fmt.Errorf("light direction: %w", err)
	}
	n, err := Normalize(normal)
	if err != nil {
		return 0, fmt.Errorf("surface normal: %w", err)
	}
	return shade(n, l), nil
}

// shade expects both vectors already normalized.
func shade(unitNormal, unitLight Vec3) float64 {
	return -unitLight.Dot(unitNormal)
}
