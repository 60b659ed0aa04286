package game

import "encoding/json"

// SimpleBotMove is the built-in reference strategy: send half the ships of
// the strongest owned planet towards the weakest planet owned by someone
// else, but only when that half-stack actually overruns the defenders.
// Throwing ships at a target it cannot take would just bleed the fleet, so
// otherwise it holds and lets its planets grow. Serves as the default
// opponent for remote players.
func SimpleBotMove(state []byte) []byte {
	var s State
	if err := json.Unmarshal(state, &s); err != nil {
		return mustMarshal(Command{})
	}

	var origin, target *Planet
	for i := range s.Planets {
		p := &s.Planets[i]
		if p.Owner == s.Player {
			if origin == nil || p.Ships > origin.Ships {
				origin = p
			}
		} else {
			if target == nil || p.Ships < target.Ships {
				target = p
			}
		}
	}
	if origin == nil || target == nil || origin.Ships < 2 {
		return mustMarshal(Command{})
	}
	fleet := origin.Ships / 2
	if fleet <= target.Ships {
		return mustMarshal(Command{})
	}

	return mustMarshal(Command{Moves: []Move{{
		Origin:      origin.Name,
		Destination: target.Name,
		ShipCount:   fleet,
	}}})
}

func mustMarshal(cmd Command) []byte {
	data, err := json.Marshal(cmd)
	if err != nil {
		panic(err)
	}
	return data
}
