package domain

import "time"

// Detection is the ephemeral output of one scan cycle: the raw matched
// time text ("5:30 PM") and the wall-clock instant it was observed.
// ObservedAt is the single "now" both resolution steps use, so that a
// slow cycle cannot misclassify a near-future time as already past.
type Detection struct {
	TimeText   string
	ObservedAt time.Time
}
