package captable

// SnapshotEntry is one line of a snapshot, with the ownership percentage
// the line held at snapshot time.
type SnapshotEntry struct {
	Name    string
	Shares  Shares
	Class   ShareClass
	Percent Percent
}

// Snapshot is an immutable point-in-time view of the full cap table. Every
// percentage is computed from the TotalShares recorded in this snapshot,
// not from whatever the ledger total grows to later. Snapshots are appended
// to the ledger history and never mutated or removed; this is the data
// contract external renderers and reporters consume.
type Snapshot struct {
	Label       string
	Entries     []SnapshotEntry
	TotalShares Shares
}

// newSnapshot freezes the given entries and total into a snapshot.
func newSnapshot(label string, entries []Entry, total Shares) Snapshot {
	frozen := make([]SnapshotEntry, 0, len(entries))
	for _, e := range entries {
		frozen = append(frozen, SnapshotEntry{
			Name:    e.Name,
			Shares:  e.Shares,
			Class:   e.Class,
			Percent: e.Shares.PercentOf(total),
		})
	}
	return Snapshot{Label: label, Entries: frozen, TotalShares: total}
}
