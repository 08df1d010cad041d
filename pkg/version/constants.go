package version

// Fixed labels returned by the low rungs of both ladders.
const (
	BaselineTag   = "v1.0.20"
	FirstPatchTag = "v1.1.1"
	FifthPatchTag = "v1.1.5"
)

// Rung constraints shared by the upgrade and previous-tag ladders.
// Every rung is lower-inclusive and upper-exclusive.
const (
	belowFirstPatch  = "< 1.1.1"
	firstPatchBand   = ">= 1.1.1, < 1.1.5"
	fifthPatchBand   = ">= 1.1.5, < 1.2.0"
	minorSeriesBand  = ">= 1.2.0, < 2.0.0"
	majorSeriesRange = ">= 2.0.0"
)
