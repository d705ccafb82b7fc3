package relation

import "slices"

// Delta describes the difference between two relation snapshots of the
// same concept and kind. It is the sole contract the persistence layer
// consumes to compute minimal external updates.
type Delta struct {
	// Deleted holds subjects present before and absent after, sorted.
	Deleted []string

	// Inserted maps newly appeared subjects to their full target sets.
	// A subject with no targets still gets an (empty) entry.
	Inserted Map

	// Removed maps still-existing subjects to targets they lost.
	Removed Map

	// Added maps still-existing subjects to targets they gained.
	Added Map
}

// Empty reports whether the delta describes no changes.
func (d Delta) Empty() bool {
	return len(d.Deleted) == 0 && len(d.Inserted) == 0 &&
		len(d.Removed) == 0 && len(d.Added) == 0
}

// Changes returns the total number of changed subjects.
func (d Delta) Changes() int {
	return len(d.Deleted) + len(d.Inserted) + len(d.Removed) + len(d.Added)
}

// ChangedSubjects returns the subjects touched by Removed or Added,
// sorted and deduplicated.
func (d Delta) ChangedSubjects() []string {
	seen := make(map[string]struct{}, len(d.Removed)+len(d.Added))
	for subject := range d.Removed {
		seen[subject] = struct{}{}
	}
	for subject := range d.Added {
		seen[subject] = struct{}{}
	}
	subjects := make([]string, 0, len(seen))
	for subject := range seen {
		subjects = append(subjects, subject)
	}
	slices.Sort(subjects)
	return subjects
}

// Diff computes the delta between a before and an after snapshot.
// Deleted subjects are sorted; removed and added targets keep the order
// they had in their source snapshot, so the result is deterministic.
func Diff(before, after Map) Delta {
	d := Delta{
		Inserted: Map{},
		Removed:  Map{},
		Added:    Map{},
	}

	for _, subject := range before.Subjects() {
		targets, ok := after[subject]
		if !ok {
			d.Deleted = append(d.Deleted, subject)
			continue
		}
		if removed := missingFrom(before[subject], targets); len(removed) > 0 {
			d.Removed[subject] = removed
		}
		if added := missingFrom(targets, before[subject]); len(added) > 0 {
			d.Added[subject] = added
		}
	}

	for _, subject := range after.Subjects() {
		if _, ok := before[subject]; !ok {
			d.Inserted[subject] = slices.Clone(after[subject])
			if d.Inserted[subject] == nil {
				d.Inserted[subject] = []string{}
			}
		}
	}

	return d
}

// missingFrom returns the elements of set absent from other, preserving
// set's order.
func missingFrom(set, other []string) []string {
	lookup := make(map[string]struct{}, len(other))
	for _, t := range other {
		lookup[t] = struct{}{}
	}
	var out []string
	for _, t := range set {
		if _, ok := lookup[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
