package embryogen

import (
	"context"
	"testing"
)

func TestNucleusAgentDriveForceIntegratesVelocity(t *testing.T) {
	params := DefaultPhysicsParameters()
	a := NewNucleusAgent(1, Nucleus4S, 1, params)
	a.incrTime = 0.1
	a.SetDesiredVelocity(Vec3[float64]{X: 1})

	ctx := context.Background()
	if err := a.AdvanceAndBuildIntForces(ctx, 0.1); err != nil {
		t.Fatalf("AdvanceAndBuildIntForces: %v", err)
	}
	if err := a.AdjustGeometryByIntForces(); err != nil {
		t.Fatalf("AdjustGeometryByIntForces: %v", err)
	}

	if a.velocities[0].X <= 0 {
		t.Errorf("expected positive X velocity after drive force, got %v", a.velocities[0])
	}
	if a.futureGeometry.Centres[0].X <= 0 {
		t.Errorf("expected centre to move in +X, got %v", a.futureGeometry.Centres[0])
	}
}

func TestNucleusAgentPublishGeometryPadsRadii(t *testing.T) {
	a := NewNucleusAgent(2, Nucleus4S, 1, DefaultPhysicsParameters())
	a.futureGeometry.Radii[0] = 3.0
	a.PublishGeometry()

	if got := a.geometryAlias.Radii[0]; got != 3.0+a.cytoplasmWidth {
		t.Errorf("expected padded radius %v, got %v", 3.0+a.cytoplasmWidth, got)
	}
	if a.shadow.Version != 1 {
		t.Errorf("expected shadow version bumped to 1, got %d", a.shadow.Version)
	}
}

type fakeNeighborLookup struct {
	aabbs   []NamedAABB
	agents  map[int]*ShadowAgent
}

func (f fakeNeighborLookup) NearbyAABBs(self *ShadowAgent, ignoreDistance float64) []NamedAABB {
	return f.aabbs
}

func (f fakeNeighborLookup) NearbyAgent(id int) (*ShadowAgent, bool) {
	s, ok := f.agents[id]
	return s, ok
}

func (f fakeNeighborLookup) SphereVelocity(agentID int, sphereHint int) (Vec3[float64], bool) {
	return Vec3[float64]{}, false
}

func TestNucleusAgentCollectsBodyForceOnOverlap(t *testing.T) {
	params := DefaultPhysicsParameters()
	a := NewNucleusAgent(1, Nucleus4S, 1, params)
	a.futureGeometry.Radii[0] = 2
	a.weights[0] = 1

	other := NewSpheres(1)
	other.Centres[0] = Vec3[float64]{X: 1}
	other.Radii[0] = 2
	otherShadow := NewShadowAgent(2, "NucleusAgent", nucleusAgentTypeID, 0, other)

	lookup := fakeNeighborLookup{
		aabbs:  []NamedAABB{{AgentID: 2, Box: otherShadow.Box}},
		agents: map[int]*ShadowAgent{2: otherShadow},
	}

	ctx := context.Background()
	if err := a.CollectExtForces(ctx, lookup); err != nil {
		t.Fatalf("CollectExtForces: %v", err)
	}

	foundBody := false
	for _, f := range a.forces {
		if f.Type == ForceBody {
			foundBody = true
			if f.Vector.X >= 0 {
				t.Errorf("expected body force to push away from overlap (negative X), got %v", f.Vector)
			}
		}
	}
	if !foundBody {
		t.Error("expected a body force to be collected for overlapping spheres")
	}
}
