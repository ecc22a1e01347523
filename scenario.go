package embryogen

import "context"

// Scenario builds the initial agent population and SceneControls for one
// named simulation run. Grounded on original_source/Scenarios/*.hpp, each of
// which is a small struct constructing a fixed cast of agents for a demo or
// regression purpose.
type Scenario interface {
	Name() string
	// Build populates the given Simulation with agents, hinters and any
	// SceneControls overrides, returning an error for invalid scenario
	// arguments (a ConfigError, per SPEC_FULL.md §7).
	Build(ctx context.Context, sim *Simulation, args []string) error
}

var scenarioRegistry = map[string]Scenario{}

func registerScenario(s Scenario) { scenarioRegistry[s.Name()] = s }

// LookupScenario resolves a CLI-supplied scenario name.
func LookupScenario(name string) (Scenario, bool) {
	s, ok := scenarioRegistry[name]
	return s, ok
}

// ScenarioNames lists every registered scenario name in no particular order;
// callers that need stable output should sort the result themselves.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarioRegistry))
	for n := range scenarioRegistry {
		names = append(names, n)
	}
	return names
}
