package game

import (
	"encoding/json"
	"log/slog"
)

// Planet is one node of the map.
type Planet struct {
	Name  string `json:"name"`
	Owner uint32 `json:"owner"` // 0 = neutral
	Ships int    `json:"ships"`
}

// State is the per-turn prompt sent to a player.
type State struct {
	Turn    int      `json:"turn"`
	Player  uint32   `json:"player"`
	Planets []Planet `json:"planets"`
}

// Move transfers ships from one owned planet to another planet.
type Move struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	ShipCount   int    `json:"ship_count"`
}

// Command is a player's answer for one turn.
type Command struct {
	Moves []Move `json:"moves"`
}

// PlanetWars is the built-in planet-conquest game. Each turn both players
// receive the full state and answer with fleet moves; transfers resolve
// immediately, owned planets grow one ship per turn, and the game ends when
// one player owns every non-neutral planet. Invalid moves are skipped: a
// bot that times out or sends garbage simply passes.
//
// Methods are driven from the match runner's single goroutine.
type PlanetWars struct {
	planets []Planet
	players int
}

// NewPlanetWars starts a game of m for two players.
func NewPlanetWars(m Map) *PlanetWars {
	planets := make([]Planet, len(m.Planets))
	copy(planets, m.Planets)
	return &PlanetWars{planets: planets, players: 2}
}

func (g *PlanetWars) Prompt(turn int, player uint32) []byte {
	state := State{Turn: turn, Player: player, Planets: g.planets}
	data, err := json.Marshal(state)
	if err != nil {
		// State contains only plain structs; this cannot fail.
		panic(err)
	}
	return data
}

func (g *PlanetWars) Apply(turn int, player uint32, action []byte) {
	if action == nil {
		return
	}
	var cmd Command
	if err := json.Unmarshal(action, &cmd); err != nil {
		slog.Debug("Ignoring malformed command", "player", player, "turn", turn, "error", err)
		return
	}
	for _, mv := range cmd.Moves {
		g.applyMove(player, mv)
	}
}

func (g *PlanetWars) applyMove(player uint32, mv Move) {
	origin := g.planet(mv.Origin)
	dest := g.planet(mv.Destination)
	if origin == nil || dest == nil || origin == dest {
		return
	}
	if origin.Owner != player || mv.ShipCount <= 0 || mv.ShipCount > origin.Ships {
		return
	}

	origin.Ships -= mv.ShipCount
	if dest.Owner == player {
		dest.Ships += mv.ShipCount
		return
	}
	dest.Ships -= mv.ShipCount
	if dest.Ships < 0 {
		dest.Owner = player
		dest.Ships = -dest.Ships
	}
}

func (g *PlanetWars) EndTurn(turn int) {
	for i := range g.planets {
		if g.planets[i].Owner != 0 {
			g.planets[i].Ships++
		}
	}
}

// Finished reports whether at most one player still owns planets.
func (g *PlanetWars) Finished() bool {
	return g.survivors() <= 1
}

// Winner returns the sole surviving owner, or, when the turn limit ended
// the game early, the player with the larger fleet. 0 means a draw.
func (g *PlanetWars) Winner() uint32 {
	if g.survivors() == 1 {
		for _, p := range g.planets {
			if p.Owner != 0 {
				return p.Owner
			}
		}
	}

	ships := make([]int, g.players+1)
	for _, p := range g.planets {
		ships[p.Owner] += p.Ships
	}
	best, winner := 0, uint32(0)
	for player := 1; player <= g.players; player++ {
		switch {
		case ships[player] > best:
			best, winner = ships[player], uint32(player)
		case ships[player] == best:
			winner = 0
		}
	}
	return winner
}

func (g *PlanetWars) survivors() int {
	owners := make(map[uint32]bool)
	for _, p := range g.planets {
		if p.Owner != 0 {
			owners[p.Owner] = true
		}
	}
	return len(owners)
}

func (g *PlanetWars) planet(name string) *Planet {
	for i := range g.planets {
		if g.planets[i].Name == name {
			return &g.planets[i]
		}
	}
	return nil
}
