// Package dedup implements the equivalence classing of Interface values by
// (space-group, area, atom-count), keeping exactly one representative per
// class.
//
// Equality on area is floating point, which is fragile when mixed directly
// into an ordered-set comparator alongside an integer key. Dedup avoids
// that by bucketing on (space_group, atom_count) first — both exact
// integers — and only quantizing area to a fixed epsilon within a bucket.
package dedup
