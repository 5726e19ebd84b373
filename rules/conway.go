package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Fewer than two neighbors kills the cell, exactly two keeps its current state,
exactly three makes it alive and more than three kills it.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors < 2:
		return false
	case neighbors == 2:
		return alive
	case neighbors == 3:
		return true
	default:
		return false
	}
}
