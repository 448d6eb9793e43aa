package systems

import (
	"math"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
)

// TrainHitMessageDuration is how long the collision warning stays up, in ms.
const TrainHitMessageDuration = 1500

// TrainSystem moves trains and resolves them against the player and the
// player's projectiles. Trains cannot be damaged.
type TrainSystem struct {
	entityManager *ecs.EntityManager
	messages      Messenger
	knockback     float64
}

// NewTrainSystem creates the system. knockback is how far a hit shoves the
// player, in pixels.
func NewTrainSystem(em *ecs.EntityManager, messages Messenger, knockback float64) *TrainSystem {
	return &TrainSystem{
		entityManager: em,
		messages:      messages,
		knockback:     knockback,
	}
}

// Update advances every train one step.
//
// Parameters:
//
//	p - the player, knocked back and damaged on contact
//	levelBounds - rectangle the player is clamped into after knockback
func (s *TrainSystem) Update(p *player.Player, levelBounds utils.Rect) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.TrainComponent, *components.PositionComponent](em) {
		train, _ := ecs.GetComponent[*components.TrainComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
		if !ok {
			continue
		}
		MoveTrain(train, pos, col)
		bounds := components.Bounds(pos, col)

		if p.Active && bounds.Overlaps(p.Bounds()) {
			if s.messages != nil {
				s.messages.ShowMessage("Hit by train! Watch out!", TrainHitMessageDuration)
			}
			s.knockBack(p, train, bounds)
			p.ClampTo(levelBounds)
			p.TakeDamage(train.Damage)
		}

		for _, proj := range p.Projectiles {
			if proj.Active && bounds.Overlaps(proj.Bounds()) {
				proj.Active = false
			}
		}
	}
}

// knockBack pushes the player against the train's direction of travel, or
// straight away from the train's center for waypoint trains.
func (s *TrainSystem) knockBack(p *player.Player, train *components.TrainComponent, bounds utils.Rect) {
	switch train.Path {
	case types.TrainHorizontal:
		if train.Direction > 0 {
			p.X -= s.knockback
		} else {
			p.X += s.knockback
		}
	case types.TrainVertical:
		if train.Direction > 0 {
			p.Y -= s.knockback
		} else {
			p.Y += s.knockback
		}
	default:
		cx, cy := bounds.Center()
		dx, dy := p.X-cx, p.Y-cy
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			p.X += dx / dist * s.knockback
			p.Y += dy / dist * s.knockback
		}
	}
}

// MoveTrain advances a train one step along its path.
func MoveTrain(train *components.TrainComponent, pos *components.PositionComponent, col *components.CollisionComponent) {
	switch train.Path {
	case types.TrainHorizontal:
		pos.X += train.Speed * train.Direction
		if pos.X <= train.MinBound {
			pos.X = train.MinBound
			train.Direction = 1
		} else if pos.X+col.Width >= train.MaxBound {
			pos.X = train.MaxBound - col.Width
			train.Direction = -1
		}
	case types.TrainVertical:
		pos.Y += train.Speed * train.Direction
		if pos.Y <= train.MinBound {
			pos.Y = train.MinBound
			train.Direction = 1
		} else if pos.Y+col.Height >= train.MaxBound {
			pos.Y = train.MaxBound - col.Height
			train.Direction = -1
		}
	case types.TrainWaypoints:
		if len(train.Waypoints) < 2 {
			return
		}
		target := train.Waypoints[train.WaypointIndex]
		dx, dy := target.X-pos.X, target.Y-pos.Y
		dist := math.Hypot(dx, dy)
		if dist < train.Speed {
			pos.X, pos.Y = target.X, target.Y
			train.WaypointIndex = (train.WaypointIndex + 1) % len(train.Waypoints)
			return
		}
		pos.X += dx / dist * train.Speed
		pos.Y += dy / dist * train.Speed
	}
}
