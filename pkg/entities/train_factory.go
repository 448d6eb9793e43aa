package entities

import (
	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
)

var trainColors = map[types.TrainKind]string{
	types.TrainPassenger: "#0066CC",
	types.TrainEngine:    "#CC0000",
	types.TrainFreight:   "#996633",
}

// TrainOptions describes a moving train.
type TrainOptions struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Kind          types.TrainKind
	Path          types.TrainPath
	Damage        int
	// MinBound and MaxBound are x limits for horizontal paths and y limits
	// for vertical paths.
	MinBound  float64
	MaxBound  float64
	Direction float64 // -1 starts moving left or up; anything else moves right or down
	Waypoints []utils.Point
}

// NewTrainEntity creates a train. Waypoint trains start on their first point.
func NewTrainEntity(em *ecs.EntityManager, opts TrainOptions) ecs.EntityID {
	if opts.Kind == "" {
		opts.Kind = types.TrainFreight
	}
	dir := 1.0
	if opts.Direction < 0 {
		dir = -1
	}
	x, y := opts.X, opts.Y
	if opts.Path == types.TrainWaypoints && len(opts.Waypoints) > 0 {
		x, y = opts.Waypoints[0].X, opts.Waypoints[0].Y
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: opts.Width, Height: opts.Height})
	ecs.AddComponent(em, id, &components.TrainComponent{
		Kind:      opts.Kind,
		Path:      opts.Path,
		Speed:     opts.Speed,
		Direction: dir,
		Damage:    opts.Damage,
		MinBound:  opts.MinBound,
		MaxBound:  opts.MaxBound,
		Waypoints: append([]utils.Point(nil), opts.Waypoints...),
	})
	ecs.AddComponent(em, id, &components.RenderComponent{
		Color:   hexColor(trainColors[opts.Kind]),
		Pattern: "train",
		Layer:   LayerTrain,
	})
	return id
}
