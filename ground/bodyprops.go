package ground

import "github.com/jrjojr/byul/numal"

// ShapeType is the collision-shape category a BodyProps describes.
type ShapeType int

const (
	ShapeSphere ShapeType = iota
	ShapeBox
	ShapeCapsule
	ShapeCylinder
	ShapeCustom
)

// BodyProps is the material/shape description attached to a ground
// surface (or an occupant of it): mass, aerodynamic drag, restitution and
// friction, plus a shape and its size. The meaning of Size depends on
// Shape: for ShapeSphere, Size.X is diameter (radius = Size.X/2); for
// ShapeBox, Size is (width, depth, height); for ShapeCapsule, Size.X is
// radius and Size.Y is the capsule's length.
type BodyProps struct {
	Mass         float32
	DragCoef     float32
	CrossSection float32
	Restitution  float32
	Friction     float32
	Shape        ShapeType
	Size         numal.Vec3
}

// DefaultBodyProps mirrors bodyprops_init's defaults: a 10cm sphere with
// typical air-drag and middling restitution/friction.
func DefaultBodyProps() BodyProps {
	return BodyProps{
		Mass:         1.0,
		DragCoef:     0.47,
		CrossSection: 0.01,
		Restitution:  0.5,
		Friction:     0.5,
		Shape:        ShapeSphere,
		Size:         numal.NewVec3(0.1, 0.1, 0.1),
	}
}
