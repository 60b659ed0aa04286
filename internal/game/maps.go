package game

import "errors"

// ErrUnknownMap means no built-in map carries the requested name.
var ErrUnknownMap = errors.New("map not found")

// DefaultMapName is used when a match request leaves the map unspecified.
const DefaultMapName = "hex"

// Map is a named starting layout.
type Map struct {
	Name    string
	Planets []Planet
}

var builtinMaps = []Map{
	{
		Name: "hex",
		Planets: []Planet{
			{Name: "alpha", Owner: 1, Ships: 10},
			{Name: "beta", Owner: 2, Ships: 10},
			{Name: "gamma", Owner: 0, Ships: 4},
			{Name: "delta", Owner: 0, Ships: 4},
			{Name: "epsilon", Owner: 0, Ships: 6},
			{Name: "zeta", Owner: 0, Ships: 6},
			{Name: "center", Owner: 0, Ships: 8},
		},
	},
	{
		Name: "duel",
		Planets: []Planet{
			{Name: "home1", Owner: 1, Ships: 12},
			{Name: "home2", Owner: 2, Ships: 12},
			{Name: "middle", Owner: 0, Ships: 5},
		},
	},
}

// ByName looks up a built-in map.
func ByName(name string) (Map, error) {
	for _, m := range builtinMaps {
		if m.Name == name {
			return m, nil
		}
	}
	return Map{}, ErrUnknownMap
}
