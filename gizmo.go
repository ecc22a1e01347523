package embryogen

import "github.com/go-gl/mathgl/mgl32"

// SceneAxesGizmo draws the fixed world-axis indicator a debug DisplayUnit
// overlays once per Tick, adapted from the teacher's GizmoComponent (which
// carried Position/Rotation/Scale/LineEnd in mgl32 terms for a live 3D
// renderer). Here it is reduced to exactly the data a DisplayUnit needs to
// draw three colored axis lines anchored at the scene origin.
type SceneAxesGizmo struct {
	Origin mgl32.Vec3
	Length float32
}

// NewSceneAxesGizmo anchors the gizmo at the given scene offset (converted
// from micrometers to the float32 precision mgl32 expects for draw calls).
func NewSceneAxesGizmo(sceneOffset Vec3[float64], length float32) SceneAxesGizmo {
	return SceneAxesGizmo{
		Origin: mgl32.Vec3{float32(sceneOffset.X), float32(sceneOffset.Y), float32(sceneOffset.Z)},
		Length: length,
	}
}

// Draw issues the three axis lines (red=X, green=Y, blue=Z) through a
// DisplayUnit, with ids baseID..baseID+2 (Simulation.Run passes
// FirstIdForSceneDebugObjects from shadowagent.go).
func (g SceneAxesGizmo) Draw(d DisplayUnit, baseID int) {
	if d == nil {
		return
	}
	origin := Vec3[float64]{X: float64(g.Origin[0]), Y: float64(g.Origin[1]), Z: float64(g.Origin[2])}
	length := float64(g.Length)

	d.DrawLine(baseID+0, origin, origin.Add(Vec3[float64]{X: length}), 1)
	d.DrawLine(baseID+1, origin, origin.Add(Vec3[float64]{Y: length}), 2)
	d.DrawLine(baseID+2, origin, origin.Add(Vec3[float64]{Z: length}), 3)
}
