package embryogen

// PhysicsParameters bundles the TRAgen force-recipe constants every
// NucleusAgent reads from, replacing the original's global extern constants
// (original_source/Agents/NucleusAgent.hpp fstrength_*) with one explicit,
// non-global value threaded through construction — SPEC_FULL.md §9's "no
// runtime singletons" rule.
type PhysicsParameters struct {
	// OverlapLevel is TRAgen's A: the body/repulsion force magnitude right
	// at contact.
	OverlapLevel float64
	// OverlapScale is TRAgen's k: how fast the body force grows once
	// penetration exceeds OverlapDepth.
	OverlapScale float64
	// OverlapDepth is TRAgen's delta_o(do): the penetration depth treated as
	// a calm zone before OverlapScale kicks in, in micrometers.
	OverlapDepth float64
	// RepulsionScale is TRAgen's B: the length scale of the repulsive
	// force's exponential decay with surface distance d (exp(-d/B)), in
	// micrometers.
	RepulsionScale float64
	// SlideScale weights the tangential-friction response to a colliding
	// neighbor's relative velocity.
	SlideScale float64
	// HinterScale weights the yolk attraction force's quadratic falloff, in
	// 1/micrometers^2.
	HinterScale float64
	// ShapeStiffness is the NS-variant shape-restoring spring constant.
	ShapeStiffness float64
}

// DefaultPhysicsParameters mirrors the constant values defined in
// original_source/Agents/NucleusAgent.cpp's global initializers.
func DefaultPhysicsParameters() PhysicsParameters {
	return PhysicsParameters{
		OverlapLevel:   400,
		OverlapScale:   400,
		OverlapDepth:   0.1,
		RepulsionScale: 5,
		SlideScale:     1,
		HinterScale:    0.00015,
		ShapeStiffness: 400,
	}
}
