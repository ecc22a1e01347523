package embryogen

import (
	"context"
	"sync"

	channerics "github.com/niceyeti/channerics/channels"
)

// The distributed protocol between Director and FrontOfficers spans three
// logical domains (SPEC_FULL.md §4.6): a barrier/reduction domain shared by
// the Director and every FrontOfficer, an inter-FrontOfficer AABB exchange
// plus barrier, and an async request/response domain for on-demand
// shadow-agent fetches. All three are implemented here as goroutines wired
// by channels rather than OS processes or MPI -- the idiomatic Go rendition
// of the original's "ST build replaces all of the above with direct function
// calls" fallback, generalized to a concurrent-but-single-binary topology.
// Grounded on niceyeti-tabular/reinforcement/learning.go's worker/fan-in
// pattern: per-participant channels feed a single coordinator goroutine via
// channerics.Merge, with context.Context carrying cooperative cancellation.

// Barrier synchronizes a fixed set of participants once per round: every
// participant calls Arrive and blocks until all others have too.
type Barrier struct {
	n       int
	mu      sync.Mutex
	arrived int
	cond    *sync.Cond
	gen     int
}

func NewBarrier(participants int) *Barrier {
	b := &Barrier{n: participants}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *Barrier) Arrive(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.arrived++
	if b.arrived == b.n {
		b.arrived = 0
		b.gen++
		b.cond.Broadcast()
		return nil
	}
	for gen == b.gen {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b.cond.Wait()
	}
	return nil
}

// AABBExchange implements the inter-FrontOfficer "exchange_AABBofAgents"
// allgather: each FrontOfficer submits its own agents' AABBs once per round
// and receives back the union contributed by every participant, followed by
// a barrier so no FrontOfficer starts its next round before every peer has
// read the merged set.
type AABBExchange struct {
	participants int
	barrier      *Barrier

	mu      sync.Mutex
	round   int
	submits map[int][]NamedAABB
	merged  []NamedAABB
	done    chan struct{}
}

func NewAABBExchange(participants int) *AABBExchange {
	return &AABBExchange{
		participants: participants,
		barrier:      NewBarrier(participants),
		submits:      make(map[int][]NamedAABB),
		done:         make(chan struct{}),
	}
}

// Submit contributes foID's current agent AABBs and blocks until every
// participant has submitted, returning the merged set visible to all.
func (e *AABBExchange) Submit(ctx context.Context, foID int, aabbs []NamedAABB) ([]NamedAABB, error) {
	e.mu.Lock()
	e.submits[foID] = aabbs
	complete := len(e.submits) == e.participants
	if complete {
		merged := make([]NamedAABB, 0)
		for _, v := range e.submits {
			merged = append(merged, v...)
		}
		e.merged = merged
		e.submits = make(map[int][]NamedAABB)
	}
	e.mu.Unlock()

	if err := e.barrier.Arrive(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	merged := e.merged
	e.mu.Unlock()
	return merged, nil
}

// ShadowAgentRequest is one on-demand fetch for an agent not locally owned,
// mirroring the original's async request/response thread for foreign
// ShadowAgents.
type ShadowAgentRequest struct {
	AgentID  int
	Response chan<- *ShadowAgent
}

// ShadowAgentServer answers ShadowAgentRequests from a single goroutine per
// FrontOfficer that owns the requested agents, fed by channerics.Merge from
// every requester's channel, exactly as niceyeti-tabular's estimator
// goroutine consumes several workers' episode channels through one merged
// stream.
type ShadowAgentServer struct {
	lookup func(id int) (*ShadowAgent, bool)
}

func NewShadowAgentServer(lookup func(id int) (*ShadowAgent, bool)) *ShadowAgentServer {
	return &ShadowAgentServer{lookup: lookup}
}

// Serve merges the given request channels and answers each request until ctx
// is canceled or every channel closes.
func (s *ShadowAgentServer) Serve(ctx context.Context, requestChans ...<-chan ShadowAgentRequest) {
	done := ctx.Done()
	merged := channerics.Merge(done, requestChans...)
	for {
		select {
		case <-done:
			return
		case req, ok := <-merged:
			if !ok {
				return
			}
			agent, _ := s.lookup(req.AgentID)
			req.Response <- agent
		}
	}
}

// MaxReduce implements the Director's MAX-reduction over the number of
// frames each FrontOfficer has rendered so far, used to decide the globally
// agreed export frame index.
func MaxReduce(values []int) int {
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
