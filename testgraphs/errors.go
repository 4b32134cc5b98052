package testgraphs

import "errors"

// ErrTooFewVertices reports that a requested shape's minimum vertex count
// was not met.
var ErrTooFewVertices = errors.New("testgraphs: too few vertices")
