package embryogen

// SceneControls bundles the scenario-wide constants every agent and the
// Director read from, replacing original_source/config.hpp's
// ControlConstants global with an explicit, passed-around value.
type SceneControls struct {
	SceneOffset Offset
	SceneSize   Vec3[float64]
	ImgRes      Resolution

	InitTime float64 // minutes
	IncrTime float64 // minutes
	StopTime float64 // minutes
	ExpoTime float64 // minutes, export/render cadence

	OutputMask    bool
	OutputPhantom bool
	OutputOptics  bool
	OutputPreview bool

	MaskFilenameTemplate    string
	PhantomFilenameTemplate string
	OpticsFilenameTemplate  string
	FinalFilenameTemplate   string

	EnableFinalPreview bool
}

// DefaultSceneControls mirrors original_source/config.hpp's
// ControlConstants default values, scaled for the CTC drosophila dataset
// (480x220x220 um embryo box at 2 px/um).
func DefaultSceneControls() SceneControls {
	return SceneControls{
		SceneOffset: Offset{},
		SceneSize:   Vec3[float64]{X: 480, Y: 220, Z: 220},
		ImgRes:      Resolution{X: 2.0, Y: 2.0, Z: 2.0},

		InitTime: 0.0,
		IncrTime: 0.1,
		StopTime: 200.0,
		ExpoTime: 0.5,

		OutputMask:    true,
		OutputPhantom: true,
		OutputOptics:  true,

		MaskFilenameTemplate:    "mask%03d.tif",
		PhantomFilenameTemplate: "phantom%03d.tif",
		OpticsFilenameTemplate:  "optics%03d.tif",
		FinalFilenameTemplate:   "final%03d.tif",
	}
}

// ImageSizePixels returns SceneSize converted to a voxel grid size at ImgRes.
func (c SceneControls) ImageSizePixels() Vec3[int] {
	px := MicronsToPixels(c.SceneSize, c.ImgRes, c.SceneOffset)
	return Vec3[int]{X: px.X + 1, Y: px.Y + 1, Z: px.Z + 1}
}

// IsExportTick reports whether simTime lands on (or just past) an export
// boundary given the configured ExpoTime cadence.
func (c SceneControls) IsExportTick(simTime float64) bool {
	if c.ExpoTime <= 0 {
		return false
	}
	const eps = 1e-9
	mod := simTime - c.ExpoTime*floorDiv(simTime, c.ExpoTime)
	return mod < eps || c.ExpoTime-mod < eps
}

func floorDiv(a, b float64) float64 {
	q := a / b
	return float64(int64(q))
}
