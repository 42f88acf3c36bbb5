package budget

import "aisle/internal/model"

// GuestCount returns the total head count over selected guests,
// weighting each by occupancy.
func GuestCount(guests []model.Guest) int {
	var total int
	for _, g := range guests {
		if g.Selected {
			total += g.Occupancy
		}
	}
	return total
}

// GroupCount is the head count for one guest group.
type GroupCount struct {
	Group string
	Count int
}

// GuestsByGroup breaks the selected head count down by free-form group
// label, in first-seen order.
func GuestsByGroup(guests []model.Guest) []GroupCount {
	idx := make(map[string]int)
	var groups []GroupCount

	for _, g := range guests {
		if !g.Selected {
			continue
		}
		i, ok := idx[g.Group]
		if !ok {
			i = len(groups)
			idx[g.Group] = i
			groups = append(groups, GroupCount{Group: g.Group})
		}
		groups[i].Count += g.Occupancy
	}
	return groups
}
