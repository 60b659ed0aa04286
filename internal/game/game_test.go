package game

import (
	"encoding/json"
	"errors"
	"testing"
)

func testMap() Map {
	return Map{
		Name: "test",
		Planets: []Planet{
			{Name: "home1", Owner: 1, Ships: 10},
			{Name: "home2", Owner: 2, Ships: 10},
			{Name: "middle", Owner: 0, Ships: 3},
		},
	}
}

func command(t *testing.T, moves ...Move) []byte {
	t.Helper()
	data, err := json.Marshal(Command{Moves: moves})
	if err != nil {
		t.Fatalf("marshal command: %v", err)
	}
	return data
}

func planetByName(t *testing.T, g *PlanetWars, name string) Planet {
	t.Helper()
	p := g.planet(name)
	if p == nil {
		t.Fatalf("planet %q not found", name)
	}
	return *p
}

func TestPromptContainsFullState(t *testing.T) {
	g := NewPlanetWars(testMap())

	var s State
	if err := json.Unmarshal(g.Prompt(4, 2), &s); err != nil {
		t.Fatalf("unmarshal prompt: %v", err)
	}
	if s.Turn != 4 || s.Player != 2 {
		t.Fatalf("prompt header = turn %d player %d, want turn 4 player 2", s.Turn, s.Player)
	}
	if len(s.Planets) != 3 {
		t.Fatalf("prompt planets = %d, want 3", len(s.Planets))
	}
}

func TestTransferBetweenOwnPlanets(t *testing.T) {
	g := NewPlanetWars(Map{Planets: []Planet{
		{Name: "a", Owner: 1, Ships: 10},
		{Name: "b", Owner: 1, Ships: 2},
		{Name: "c", Owner: 2, Ships: 10},
	}})

	g.Apply(1, 1, command(t, Move{Origin: "a", Destination: "b", ShipCount: 4}))

	if got := planetByName(t, g, "a").Ships; got != 6 {
		t.Fatalf("a ships = %d, want 6", got)
	}
	if got := planetByName(t, g, "b").Ships; got != 6 {
		t.Fatalf("b ships = %d, want 6", got)
	}
}

func TestAttackFlipsOwnerOnOverrun(t *testing.T) {
	g := NewPlanetWars(testMap())

	g.Apply(1, 1, command(t, Move{Origin: "home1", Destination: "middle", ShipCount: 5}))

	middle := planetByName(t, g, "middle")
	if middle.Owner != 1 {
		t.Fatalf("middle owner = %d, want 1", middle.Owner)
	}
	if middle.Ships != 2 {
		t.Fatalf("middle ships = %d, want 2", middle.Ships)
	}
}

func TestAttackThatFallsShortOnlyReducesDefenders(t *testing.T) {
	g := NewPlanetWars(testMap())

	g.Apply(1, 1, command(t, Move{Origin: "home1", Destination: "home2", ShipCount: 4}))

	home2 := planetByName(t, g, "home2")
	if home2.Owner != 2 {
		t.Fatalf("home2 owner = %d, want 2", home2.Owner)
	}
	if home2.Ships != 6 {
		t.Fatalf("home2 ships = %d, want 6", home2.Ships)
	}
}

func TestInvalidMovesAreSkipped(t *testing.T) {
	g := NewPlanetWars(testMap())
	before := planetByName(t, g, "home1").Ships

	g.Apply(1, 1, command(t,
		Move{Origin: "home2", Destination: "home1", ShipCount: 3}, // not owned
		Move{Origin: "home1", Destination: "home1", ShipCount: 3}, // self move
		Move{Origin: "home1", Destination: "home2", ShipCount: 99}, // too many
		Move{Origin: "home1", Destination: "nowhere", ShipCount: 3},
		Move{Origin: "home1", Destination: "home2", ShipCount: 0},
	))
	g.Apply(1, 2, []byte("not json"))
	g.Apply(1, 2, nil)

	if got := planetByName(t, g, "home1").Ships; got != before {
		t.Fatalf("home1 ships = %d, want unchanged %d", got, before)
	}
	if got := planetByName(t, g, "home2").Ships; got != 10 {
		t.Fatalf("home2 ships = %d, want unchanged 10", got)
	}
}

func TestEndTurnGrowsOwnedPlanetsOnly(t *testing.T) {
	g := NewPlanetWars(testMap())
	g.EndTurn(1)

	if got := planetByName(t, g, "home1").Ships; got != 11 {
		t.Fatalf("home1 ships = %d, want 11", got)
	}
	if got := planetByName(t, g, "middle").Ships; got != 3 {
		t.Fatalf("neutral middle ships = %d, want 3", got)
	}
}

func TestFinishedAndSoleSurvivorWinner(t *testing.T) {
	g := NewPlanetWars(Map{Planets: []Planet{
		{Name: "home1", Owner: 1, Ships: 20},
		{Name: "home2", Owner: 2, Ships: 10},
		{Name: "middle", Owner: 0, Ships: 3},
	}})
	if g.Finished() {
		t.Fatalf("game finished at start")
	}

	// Player 1 conquers home2.
	g.Apply(1, 1, command(t, Move{Origin: "home1", Destination: "home2", ShipCount: 15}))
	if home2 := planetByName(t, g, "home2"); home2.Owner != 1 {
		t.Fatalf("home2 owner = %d, want 1", home2.Owner)
	}

	if !g.Finished() {
		t.Fatalf("game not finished with one surviving owner")
	}
	if got := g.Winner(); got != 1 {
		t.Fatalf("winner = %d, want 1", got)
	}
}

func TestTurnLimitWinnerIsLargerFleet(t *testing.T) {
	g := NewPlanetWars(Map{Planets: []Planet{
		{Name: "a", Owner: 1, Ships: 12},
		{Name: "b", Owner: 2, Ships: 7},
	}})
	if g.Finished() {
		t.Fatalf("game finished with both players alive")
	}
	if got := g.Winner(); got != 1 {
		t.Fatalf("winner = %d, want the larger fleet", got)
	}
}

func TestEqualFleetsIsADraw(t *testing.T) {
	g := NewPlanetWars(Map{Planets: []Planet{
		{Name: "a", Owner: 1, Ships: 9},
		{Name: "b", Owner: 2, Ships: 9},
	}})
	if got := g.Winner(); got != 0 {
		t.Fatalf("winner = %d, want 0 for a draw", got)
	}
}

func TestByName(t *testing.T) {
	m, err := ByName(DefaultMapName)
	if err != nil {
		t.Fatalf("ByName(%q) error: %v", DefaultMapName, err)
	}
	if len(m.Planets) == 0 {
		t.Fatalf("default map has no planets")
	}

	if _, err := ByName("atlantis"); !errors.Is(err, ErrUnknownMap) {
		t.Fatalf("ByName(unknown) error = %v, want ErrUnknownMap", err)
	}
}

func TestSimpleBotMovesFromStrongestToWeakest(t *testing.T) {
	g := NewPlanetWars(testMap())
	move := SimpleBotMove(g.Prompt(1, 1))

	var cmd Command
	if err := json.Unmarshal(move, &cmd); err != nil {
		t.Fatalf("unmarshal bot command: %v", err)
	}
	if len(cmd.Moves) != 1 {
		t.Fatalf("moves = %d, want 1", len(cmd.Moves))
	}
	mv := cmd.Moves[0]
	if mv.Origin != "home1" || mv.Destination != "middle" {
		t.Fatalf("move = %s -> %s, want home1 -> middle", mv.Origin, mv.Destination)
	}
	if mv.ShipCount != 5 {
		t.Fatalf("ship count = %d, want half of 10", mv.ShipCount)
	}

	// The move must be accepted by the game.
	g.Apply(1, 1, move)
	if got := planetByName(t, g, "home1").Ships; got != 5 {
		t.Fatalf("home1 ships = %d, want 5 after the bot's move", got)
	}
}

func TestSimpleBotHoldsAgainstStrongerTarget(t *testing.T) {
	// Half of 10 cannot take 8 defenders; attacking would only bleed ships
	// into the enemy's growth. The bot must hold.
	g := NewPlanetWars(Map{Planets: []Planet{
		{Name: "home1", Owner: 1, Ships: 10},
		{Name: "home2", Owner: 2, Ships: 8},
	}})

	var cmd Command
	if err := json.Unmarshal(SimpleBotMove(g.Prompt(1, 1)), &cmd); err != nil {
		t.Fatalf("unmarshal bot command: %v", err)
	}
	if len(cmd.Moves) != 0 {
		t.Fatalf("moves = %v, want a hold", cmd.Moves)
	}
}

func TestSimpleBotPassesOnGarbage(t *testing.T) {
	var cmd Command
	if err := json.Unmarshal(SimpleBotMove([]byte("garbage")), &cmd); err != nil {
		t.Fatalf("unmarshal bot command: %v", err)
	}
	if len(cmd.Moves) != 0 {
		t.Fatalf("moves = %d, want a pass", len(cmd.Moves))
	}
}
