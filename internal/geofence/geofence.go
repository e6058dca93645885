// Package geofence decides whether a position lies inside a circular
// boundary around a reference point.
package geofence

import "geo-attend/internal/geo"

type Status int

const (
	// Unknown means the position or the fence is not known yet.
	Unknown Status = iota
	Inside
	Outside
)

func (s Status) String() string {
	switch s {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}

// Fence is a circle of Radius meters around Center.
type Fence struct {
	Center geo.Location
	Radius float64
}

// Result of one evaluation. Distance is nil when Status is Unknown.
type Result struct {
	Status   Status
	Distance *float64
}

// IsInside reports whether check-in is allowed by the fence.
func (r Result) IsInside() bool {
	return r.Status == Inside
}

// Evaluate compares current against fence. Either argument may be nil.
// The boundary is inclusive and there is no hysteresis between calls.
func Evaluate(current *geo.Location, fence *Fence) Result {
	if current == nil || fence == nil {
		return Result{Status: Unknown}
	}

	d := geo.Distance(*current, fence.Center)
	return Classify(d, fence.Radius)
}

// Classify turns a known distance into a Result for the given radius.
func Classify(distance, radius float64) Result {
	status := Outside
	if distance <= radius {
		status = Inside
	}
	return Result{Status: status, Distance: &distance}
}
