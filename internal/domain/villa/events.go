package villa

import "time"

type VillaCreated struct {
	VillaID VillaID
	Name    string
	At      time.Time
}

func (e VillaCreated) EventName() string     { return "villa.created" }
func (e VillaCreated) AggregateID() string   { return string(e.VillaID) }
func (e VillaCreated) OccurredAt() time.Time { return e.At }

type VillaStatusToggled struct {
	VillaID VillaID
	Active  bool
	At      time.Time
}

func (e VillaStatusToggled) EventName() string     { return "villa.status_toggled" }
func (e VillaStatusToggled) AggregateID() string   { return string(e.VillaID) }
func (e VillaStatusToggled) OccurredAt() time.Time { return e.At }
