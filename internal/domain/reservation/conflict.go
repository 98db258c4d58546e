package reservation

// Annotated pairs a reservation with its derived conflict flag. The flag is
// advisory and never persisted; callers recompute it on every query because
// statuses can change between reads.
type Annotated struct {
	Reservation *Reservation
	HasConflict bool
}

// AnnotateConflicts flags every non-cancelled reservation that shares a
// (resource, day, slot) tuple with another non-cancelled reservation.
// Single pass to group, single pass to flag; nothing is altered or dropped.
func AnnotateConflicts(reservations []*Reservation) []Annotated {
	groups := make(map[string]int, len(reservations))
	for _, r := range reservations {
		if r.Status() == StatusCancelled {
			continue
		}
		groups[r.collisionKey()]++
	}

	annotated := make([]Annotated, len(reservations))
	for i, r := range reservations {
		flag := r.Status() != StatusCancelled && groups[r.collisionKey()] > 1
		annotated[i] = Annotated{Reservation: r, HasConflict: flag}
	}
	return annotated
}
