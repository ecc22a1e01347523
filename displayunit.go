package embryogen

// DrawShape mirrors the teacher's GizmoType enum (gizmo.go, since adapted
// into this file), naming the primitive a DisplayUnit call draws.
type DrawShape int

const (
	DrawShapePoint DrawShape = iota
	DrawShapeLine
	DrawShapeVector
	DrawShapeTriangle
)

// DrawCall is one opaque draw instruction a DisplayUnit backend renders or
// logs; Color follows the original's 0..6 palette convention documented in
// original_source/Agents/NucleusAgent.hpp (0=white,1=red,2=green,3=blue,
// 4=cyan,5=magenta,6=yellow).
type DrawCall struct {
	ID     int
	Shape  DrawShape
	A, B, C Vec3[float64] // meaning depends on Shape: point uses A; line/vector use A,B; triangle uses A,B,C
	Color  int
}

// DisplayUnit is the observer interface agents and the Director draw debug
// and body geometry through, grounded on
// original_source/DisplayUnits/DisplayUnit.hpp. Nothing about physics reads
// these calls back -- it is a pure sink.
type DisplayUnit interface {
	DrawPoint(id int, pos Vec3[float64], color int)
	DrawLine(id int, from, to Vec3[float64], color int)
	DrawVector(id int, from, dir Vec3[float64], color int)
	DrawTriangle(id int, a, b, c Vec3[float64], color int)
	Flush()
	Tick(frame int)
}
