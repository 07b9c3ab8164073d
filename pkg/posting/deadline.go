package posting

import "time"

// ArchiveWindow is how long past its deadline a posting keeps showing
// up in active listings before moving to the archive.
const ArchiveWindow = 24 * time.Hour

// ArchiveCutoff returns the rolling cutoff separating active postings
// from archived ones. Capture now once per request so a single listing
// request partitions consistently across the whole scan.
func ArchiveCutoff(now time.Time) time.Time {
	return now.Add(-ArchiveWindow)
}

// IsActive reports whether a posting with the given deadline still
// belongs to the active set. A deadline exactly on the cutoff counts
// as archived: active is deadline > cutoff, archived is deadline <=
// cutoff, so the two sets partition the timeline with no gap and no
// double count.
func IsActive(deadline, now time.Time) bool {
	return deadline.After(ArchiveCutoff(now))
}
