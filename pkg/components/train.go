package components

import (
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
)

// TrainComponent is a moving hazard.
type TrainComponent struct {
	Kind      types.TrainKind
	Path      types.TrainPath
	Speed     float64 // pixels per frame
	Direction float64 // +1 or -1 on bounce paths
	Damage    int
	// MinBound and MaxBound limit bounce paths: x for horizontal, y for vertical.
	MinBound      float64
	MaxBound      float64
	Waypoints     []utils.Point
	WaypointIndex int
}
