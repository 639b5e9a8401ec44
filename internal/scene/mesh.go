package scene

import "github.com/Faultbox/meshview/pkg/math"

// Vertex is a mesh vertex as uploaded: position then normal.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// floatsPerVertex matches Vertex.
const floatsPerVertex = 6

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Union returns the smallest box containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: math.Vec3{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y), Z: min(b.Min.Z, o.Min.Z)},
		Max: math.Vec3{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y), Z: max(b.Max.Z, o.Max.Z)},
	}
}

// Diameter returns the length of the box diagonal.
func (b Bounds) Diameter() float32 {
	return b.Max.Sub(b.Min).Length()
}

// boxFaces lists each face as its outward normal and four corners in
// counter-clockwise order seen from outside, on the unit cube.
var boxFaces = [6]struct {
	normal  math.Vec3
	corners [4]math.Vec3
}{
	{math.Vec3{X: 1}, [4]math.Vec3{{X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}}},
	{math.Vec3{X: -1}, [4]math.Vec3{{X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
	{math.Vec3{Y: 1}, [4]math.Vec3{{X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}}},
	{math.Vec3{Y: -1}, [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
	{math.Vec3{Z: 1}, [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
	{math.Vec3{Z: -1}, [4]math.Vec3{{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}}},
}

// BoxVertices returns the triangles of an axis-aligned box, two per face,
// with flat face normals.
func BoxVertices(center, size math.Vec3) []Vertex {
	half := size.Scale(0.5)
	out := make([]Vertex, 0, 36)
	for _, f := range boxFaces {
		var p [4]math.Vec3
		for i, c := range f.corners {
			p[i] = math.Vec3{
				X: center.X + c.X*half.X,
				Y: center.Y + c.Y*half.Y,
				Z: center.Z + c.Z*half.Z,
			}
		}
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			out = append(out, Vertex{Position: p[i], Normal: f.normal})
		}
	}
	return out
}

// BoxBounds returns the bounds of a box.
func BoxBounds(center, size math.Vec3) Bounds {
	half := size.Scale(0.5)
	return Bounds{Min: center.Sub(half), Max: center.Add(half)}
}

// flatten packs vertices into the upload layout.
func flatten(vs []Vertex) []float32 {
	out := make([]float32, 0, len(vs)*floatsPerVertex)
	for _, v := range vs {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		)
	}
	return out
}
