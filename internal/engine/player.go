package engine

// Player holds one player's state. The ID doubles as the turn-order
// key: seat "0" plays first. IDs are stable and never reused.
type Player struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ActiveCities []string `json:"active_cities"` // cities the player's network reaches
}

func NewPlayer(id, name string) *Player {
	return &Player{ID: id, Name: name}
}

// HasActiveCity returns true if the city is in the player's network.
func (p *Player) HasActiveCity(city string) bool {
	for _, c := range p.ActiveCities {
		if c == city {
			return true
		}
	}
	return false
}

// AddActiveCity appends a city to the player's network. Idempotent.
func (p *Player) AddActiveCity(city string) {
	if !p.HasActiveCity(city) {
		p.ActiveCities = append(p.ActiveCities, city)
	}
}
