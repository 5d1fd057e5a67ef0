package engine

// PhaseName identifies one state of the game's phase machine:
// waiting_for_players -> setup -> play -> scoring.
type PhaseName string

const (
	PhaseWaitingForPlayers PhaseName = "waiting_for_players"
	PhaseSetup             PhaseName = "setup"
	PhasePlay              PhaseName = "play"
	PhaseScoring           PhaseName = "scoring"
)

// PhaseDef declares a phase's successor, its end predicate (re-checked
// after every state-mutating move), an optional hook run once when the
// predicate first turns true, and an optional hook run at the close of
// every turn spent in the phase.
type PhaseDef struct {
	Next    PhaseName
	EndIf   func(g *Game) bool
	OnEnd   func(g *Game) []Event
	TurnEnd func(g *Game) []Event
}

var phases = map[PhaseName]PhaseDef{
	PhaseWaitingForPlayers: {
		Next: PhaseSetup,
		EndIf: func(g *Game) bool {
			return g.SessionStarted
		},
	},
	PhaseSetup: {
		Next: PhasePlay,
		EndIf: func(g *Game) bool {
			holders := make(map[string]bool)
			for _, c := range g.Contracts {
				if c.PlayerID != "" {
					holders[c.PlayerID] = true
				}
			}
			return g.NumPlayers > 0 && len(holders) >= g.NumPlayers
		},
		OnEnd: func(g *Game) []Event {
			return g.InitializeIndependentRailroads()
		},
	},
	PhasePlay: {
		Next: PhaseScoring,
		// No automatic transition into scoring in the current ruleset.
		EndIf: func(g *Game) bool { return false },
		TurnEnd: func(g *Game) []Event {
			// Grow once per full round, when the last seat's turn ends.
			if g.PlayOrderPos != len(g.PlayOrder)-1 {
				return nil
			}
			added := g.GrowIndependentRailroads()
			if len(added) == 0 {
				return nil
			}
			return []Event{{Type: EventRailroadsGrown, Data: map[string]interface{}{
				"routes": added,
			}}}
		},
	},
	PhaseScoring: {
		// Terminal stub: self-loops, never ends.
		Next:  PhaseScoring,
		EndIf: func(g *Game) bool { return false },
	},
}

// checkPhaseEnd re-evaluates the current phase's end predicate and, if
// it holds, runs the phase's OnEnd hook and advances to the successor.
// All other context fields are preserved.
func (g *Game) checkPhaseEnd() []Event {
	def, ok := phases[g.Phase]
	if !ok || def.EndIf == nil || !def.EndIf(g) {
		return nil
	}
	var events []Event
	if def.OnEnd != nil {
		events = append(events, def.OnEnd(g)...)
	}
	g.Phase = def.Next
	events = append(events, Event{Type: EventPhaseChange, Data: map[string]interface{}{
		"phase": string(g.Phase),
	}})
	return events
}

// moveSpec gates a move by phase and, optionally, by acting player.
type moveSpec struct {
	phases       []PhaseName
	requiresTurn bool
}

func (m moveSpec) allowsPhase(p PhaseName) bool {
	for _, ph := range m.phases {
		if ph == p {
			return true
		}
	}
	return false
}

// moveTable is the fixed legality table: which moves are permitted in
// which phase, and which require the actor to hold the turn. No moves
// are legal during waiting_for_players or scoring.
var moveTable = map[ActionType]moveSpec{
	ActionStartingContract: {phases: []PhaseName{PhaseSetup}, requiresTurn: false},
	ActionAddCity:          {phases: []PhaseName{PhaseSetup, PhasePlay}, requiresTurn: false},
	ActionPrivateContract:  {phases: []PhaseName{PhasePlay}, requiresTurn: true},
	ActionMarketContract:   {phases: []PhaseName{PhasePlay}, requiresTurn: false},
	ActionAddContract:      {phases: []PhaseName{PhasePlay}, requiresTurn: true},
	ActionClaimMarket:      {phases: []PhaseName{PhasePlay}, requiresTurn: true},
	ActionToggleFulfilled:  {phases: []PhaseName{PhasePlay}, requiresTurn: false},
	ActionDeleteContract:   {phases: []PhaseName{PhasePlay}, requiresTurn: false},
	ActionAcquireRailroad:  {phases: []PhaseName{PhasePlay}, requiresTurn: true},
	ActionEndTurn:          {phases: []PhaseName{PhasePlay}, requiresTurn: true},
}
