package embryogen

import (
	"context"
	"testing"
)

func TestFrontOfficerNearbyAABBsExcludesSelfAndFar(t *testing.T) {
	exchange := NewAABBExchange(1)
	barrier := NewBarrier(2)
	fo := NewFrontOfficer(0, exchange, barrier, NewNopLogger(), nil)

	near := NewNucleusAgent(1, Nucleus4S, 1, DefaultPhysicsParameters())
	near.futureGeometry.Centres[0] = Vec3[float64]{X: 1}
	near.futureGeometry.UpdateOwnAABB()
	near.PublishGeometry()

	far := NewNucleusAgent(2, Nucleus4S, 1, DefaultPhysicsParameters())
	far.futureGeometry.Centres[0] = Vec3[float64]{X: 10000}
	far.futureGeometry.UpdateOwnAABB()
	far.PublishGeometry()

	self := NewNucleusAgent(3, Nucleus4S, 1, DefaultPhysicsParameters())
	self.futureGeometry.UpdateOwnAABB()
	self.PublishGeometry()

	fo.AddAgent(near)
	fo.AddAgent(far)
	fo.AddAgent(self)

	result := fo.NearbyAABBs(self.Shadow(), 50)
	if len(result) != 1 || result[0].AgentID != 1 {
		t.Errorf("expected only the near agent, got %+v", result)
	}
}

func TestFrontOfficerRunRoundSingleParticipant(t *testing.T) {
	exchange := NewAABBExchange(1)
	barrier := NewBarrier(2)
	fo := NewFrontOfficer(0, exchange, barrier, NewNopLogger(), nil)

	a := NewNucleusAgent(1, Nucleus4S, 1, DefaultPhysicsParameters())
	a.incrTime = 0.1
	fo.AddAgent(a)

	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- fo.RunRound(ctx, 0.1) }()
	if err := barrier.Arrive(ctx); err != nil {
		t.Fatalf("director-side barrier arrival: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	if fo.AgentCount() != 1 {
		t.Errorf("expected agent to remain after round, got count %d", fo.AgentCount())
	}
}
