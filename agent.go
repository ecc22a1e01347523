package embryogen

import "context"

// AgentStatus reports what a FrontOfficer should do with an agent after its
// round finished: keep it going, or retire it (optionally spawning daughters,
// handled by the caller reading Daughters).
type AgentStatus int

const (
	AgentAlive AgentStatus = iota
	AgentShouldClose
)

// AbstractAgent is the five-phase contract every simulated entity implements,
// grounded on original_source/Agents/AbstractAgent.hpp's pure-virtual round
// methods. FrontOfficer.RunRound calls the five phases, in this fixed order,
// once per agent per global tick; no phase may be skipped, matching the
// original's non-optional virtual dispatch (hinter agents implement all but
// PublishGeometry as no-ops, see hinter_shape.go / hinter_trajectory.go).
type AbstractAgent interface {
	ID() int
	Shadow() *ShadowAgent

	// AdvanceAndBuildIntForces moves the agent's notion of "current time"
	// forward to futureGlobalTime and accumulates internal (self-driven)
	// forces -- drive, s2s -- into its force buffer.
	AdvanceAndBuildIntForces(ctx context.Context, futureGlobalTime float64) error

	// AdjustGeometryByIntForces integrates the internal forces accumulated
	// above into futureGeometry (velocity/position update) and clears the
	// force buffer for the external-force phase.
	AdjustGeometryByIntForces() error

	// CollectExtForces queries nearby agents (via the FrontOfficer's
	// proximity lookups) and accumulates external forces -- friction,
	// repulsive, body, slide, hinter -- into the force buffer.
	CollectExtForces(ctx context.Context, nearby NeighborLookup) error

	// AdjustGeometryByExtForces integrates the external forces into
	// futureGeometry, symmetric to AdjustGeometryByIntForces.
	AdjustGeometryByExtForces() error

	// PublishGeometry snapshots futureGeometry into the agent's published
	// ShadowAgent, bumping its Version so peers refresh their caches.
	PublishGeometry()

	// Status reports whether the agent should be retired after this round.
	Status() AgentStatus
}

// NeighborLookup is the subset of FrontOfficer functionality an agent's
// CollectExtForces phase needs: resolving nearby AABBs into actual shadow
// agents without the agent package depending on FrontOfficer directly.
// Grounded on original_source/FrontOfficer.hpp's getNearbyAABBs /
// getNearbyAgent / translateNameIdToAgentName trio.
type NeighborLookup interface {
	NearbyAABBs(self *ShadowAgent, ignoreDistance float64) []NamedAABB
	NearbyAgent(id int) (*ShadowAgent, bool)

	// SphereVelocity reports the live velocity of the numbered sphere of the
	// named agent, if that agent is owned locally by this FrontOfficer. A
	// truly foreign agent (owned by a peer FrontOfficer) only ever exposes
	// its published ShadowAgent, which carries no velocity, so the slide
	// force treats such neighbours as stationary.
	SphereVelocity(agentID int, sphereHint int) (Vec3[float64], bool)
}
