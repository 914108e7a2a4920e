package roster

import (
	"github.com/tiendc/go-deepcopy"

	"sweepsim/src/types"
)

// StaticSource replays the same roster for every run, like reloading one input file each time.
type StaticSource struct {
	template types.Roster
}

func NewStaticSource(roster types.Roster) *StaticSource {
	return &StaticSource{template: roster}
}

// Roster returns a deep copy of the template so no run can alter what later runs see.
func (s *StaticSource) Roster(run int) (types.Roster, error) {
	fresh := new(types.Roster)
	if err := deepcopy.Copy(fresh, &s.template); err != nil {
		return types.Roster{}, err
	}
	return *fresh, nil
}
