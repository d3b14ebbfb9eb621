package eventbuilder

import "errors"

// ErrEmptyRoute indicates a cluster's solved route carried no arcs (bug
// upstream: routing.SolveCluster never returns an empty arc slice for a
// non-empty cluster).
var ErrEmptyRoute = errors.New("eventbuilder: route has no arcs")
