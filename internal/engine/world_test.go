package engine

import (
	"math"
	"testing"

	"github.com/mohamedayman15069/Agar/internal/core"
)

func testWorld(seed int64) *World {
	return NewWorld(4, 50, true, 200, 0, 0, seed)
}

func TestWorldDeterminism(t *testing.T) {
	a := testWorld(7)
	b := testWorld(7)

	for step := 0; step < 20; step++ {
		a.TakeAction(25, 25, DirectiveNone)
		b.TakeAction(25, 25, DirectiveNone)
		ra := a.Step()
		rb := b.Step()
		if ra != rb {
			t.Fatalf("step %d: rewards diverged: %v vs %v", step, ra, rb)
		}
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if len(sa.Pellets) != len(sb.Pellets) {
		t.Fatalf("pellet counts diverged: %d vs %d", len(sa.Pellets), len(sb.Pellets))
	}
	for i := range sa.Pellets {
		if sa.Pellets[i] != sb.Pellets[i] {
			t.Fatalf("pellet %d diverged: %+v vs %+v", i, sa.Pellets[i], sb.Pellets[i])
		}
	}
	if len(sa.Agent) != len(sb.Agent) || sa.Agent[0] != sb.Agent[0] {
		t.Fatalf("agents diverged: %+v vs %+v", sa.Agent, sb.Agent)
	}
}

func TestWorldResetRestoresInitialState(t *testing.T) {
	w := testWorld(11)
	first := w.Snapshot()

	for i := 0; i < 10; i++ {
		w.TakeAction(0, 0, DirectiveNone)
		w.Step()
	}
	w.Reset()
	second := w.Snapshot()

	if w.Tick() != 0 {
		t.Errorf("Tick after reset = %d, want 0", w.Tick())
	}
	if len(first.Pellets) != len(second.Pellets) {
		t.Fatalf("pellet counts differ after reset: %d vs %d", len(first.Pellets), len(second.Pellets))
	}
	for i := range first.Pellets {
		if first.Pellets[i] != second.Pellets[i] {
			t.Fatalf("pellet %d not restored: %+v vs %+v", i, first.Pellets[i], second.Pellets[i])
		}
	}
	if first.Agent[0] != second.Agent[0] {
		t.Errorf("agent not restored: %+v vs %+v", first.Agent, second.Agent)
	}
}

func TestWorldRewardIsMassDelta(t *testing.T) {
	w := testWorld(3)

	// Place a pellet directly on the agent so the next tick eats it.
	agentPos := w.agent.Cells[0].Pos
	w.pellets[0] = Pellet{Pos: agentPos}

	massBefore := w.agent.Mass()
	w.TakeAction(agentPos.X, agentPos.Y, DirectiveNone)
	reward := w.Step()

	if reward <= 0 {
		t.Fatalf("reward = %v, want > 0 after eating a pellet", reward)
	}
	if got := w.agent.Mass() - massBefore; math.Abs(got-reward) > 1e-9 {
		t.Errorf("reward %v does not match mass delta %v", reward, got)
	}
}

func TestWorldTicksPerStep(t *testing.T) {
	w := NewWorld(6, 50, true, 10, 0, 0, 1)
	w.TakeAction(25, 25, DirectiveNone)
	w.Step()
	if w.Tick() != 6 {
		t.Errorf("Tick = %d, want 6 after one step", w.Tick())
	}
	w.Step()
	if w.Tick() != 12 {
		t.Errorf("Tick = %d, want 12 after two steps", w.Tick())
	}
}

func TestWorldActionClamping(t *testing.T) {
	w := testWorld(1)
	w.TakeAction(-100, 9999, DirectiveNone)
	if w.agent.Target.X != 0 || w.agent.Target.Y != 50 {
		t.Errorf("Target = %+v, want clamped to (0, 50)", w.agent.Target)
	}
}

func TestWorldSplit(t *testing.T) {
	w := testWorld(5)
	w.agent.Cells[0].Mass = 4 * MinCellMass

	w.TakeAction(40, 40, DirectiveSplit)
	w.Step()

	if len(w.agent.Cells) != 2 {
		t.Fatalf("cells after split = %d, want 2", len(w.agent.Cells))
	}
	// Splitting conserves mass minus whatever was eaten; each half starts
	// at 2*MinCellMass.
	for i := range w.agent.Cells {
		if w.agent.Cells[i].Mass < 2*MinCellMass {
			t.Errorf("cell %d mass = %v, want >= %v", i, w.agent.Cells[i].Mass, 2*MinCellMass)
		}
	}
}

func TestWorldSplitBelowThreshold(t *testing.T) {
	w := testWorld(5)
	// Fresh cells weigh MinCellMass and cannot split.
	w.TakeAction(40, 40, DirectiveSplit)
	w.Step()
	if len(w.agent.Cells) != 1 {
		t.Errorf("cells = %d, want 1 (below split threshold)", len(w.agent.Cells))
	}
}

func TestWorldFeedEjectsFood(t *testing.T) {
	w := NewWorld(1, 1000, true, 0, 0, 0, 5)
	// A heavy cell barely moves, so the ejected food escapes its radius.
	w.agent.Cells[0].Mass = 10000
	w.agent.Cells[0].Pos = core.Vec2{X: 200, Y: 200}

	w.TakeAction(900, 900, DirectiveFeed)
	w.Step()

	if len(w.foods) != 1 {
		t.Fatalf("foods = %d, want 1 after feed directive", len(w.foods))
	}
	if got := w.agent.Cells[0].Mass; got != 10000-FoodMass {
		t.Errorf("cell mass = %v, want %v", got, 10000-FoodMass)
	}
}

func TestWorldDoneWhenAgentEliminated(t *testing.T) {
	w := testWorld(9)
	if w.Done() {
		t.Fatal("fresh world already done")
	}
	w.agent.Cells = nil
	w.TakeAction(25, 25, DirectiveNone)
	w.Step()
	if !w.Done() {
		t.Error("world not done after agent elimination")
	}
}

func TestWorldVirusPopsHeavyCell(t *testing.T) {
	w := NewWorld(1, 1000, true, 0, 1, 0, 2)
	w.agent.Cells[0].Mass = 2 * VirusMass
	w.agent.Cells[0].Pos = w.viruses[0].Pos
	w.agent.Target = w.agent.Cells[0].Pos

	before := w.agent.Mass()
	w.Step()

	if w.agent.Mass() >= before {
		t.Errorf("mass = %v, want less than %v after virus hit", w.agent.Mass(), before)
	}
}

func TestWorldPelletRegen(t *testing.T) {
	regen := NewWorld(1, 50, true, 50, 0, 0, 4)
	fixed := NewWorld(1, 50, false, 50, 0, 0, 4)

	for i := 0; i < 200; i++ {
		target := core.Vec2{X: float64(i%10) * 5, Y: float64(i/10%10) * 5}
		regen.TakeAction(target.X, target.Y, DirectiveNone)
		fixed.TakeAction(target.X, target.Y, DirectiveNone)
		regen.Step()
		fixed.Step()
	}

	if len(regen.pellets) != 50 {
		t.Errorf("regen pellet count = %d, want 50", len(regen.pellets))
	}
	if len(fixed.pellets) >= 50 {
		t.Errorf("fixed pellet count = %d, want < 50 after grazing", len(fixed.pellets))
	}
}

func TestSnapshotShapes(t *testing.T) {
	w := NewWorld(4, 1000, true, 100, 5, 3, 6)
	s := w.Snapshot()

	if len(s.Pellets) != 100 {
		t.Errorf("pellets = %d, want 100", len(s.Pellets))
	}
	if len(s.Viruses) != 5 {
		t.Errorf("viruses = %d, want 5", len(s.Viruses))
	}
	if len(s.Agent) != 1 {
		t.Errorf("agent cells = %d, want 1", len(s.Agent))
	}
	if len(s.Others) != 3 {
		t.Errorf("others = %d, want 3", len(s.Others))
	}
	if s.Agent[0].Mass != MinCellMass {
		t.Errorf("agent mass = %v, want %v", s.Agent[0].Mass, MinCellMass)
	}
}
