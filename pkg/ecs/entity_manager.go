// Package ecs holds the entity/component store every level owns.
//
// Components are plain structs keyed by their reflect.Type. Entities are never
// removed during a pass: DestroyEntity only marks them, IsAlive reports the mark,
// and RemoveMarkedEntities sweeps them at the end of the frame.
package ecs

import (
	"reflect"
	"sort"
)

// EntityID uniquely identifies an entity inside one EntityManager.
type EntityID uint64

// EntityManager manages all entities and their components.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component instance
	components map[EntityID]map[reflect.Type]interface{}
	// entities marked for removal, swept by RemoveMarkedEntities
	entitiesToDestroy []EntityID
	marked            map[EntityID]bool
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // 0 is reserved as the invalid ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]bool),
	}
}

// CreateEntity creates a new entity and returns its ID.
// IDs grow monotonically, so ascending ID order is creation order.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity marks the entity for removal. The entity keeps its components
// until RemoveMarkedEntities runs, but IsAlive returns false immediately.
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists || em.marked[id] {
		return
	}
	em.marked[id] = true
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsAlive reports whether the entity exists and has not been marked for removal.
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	return !em.marked[id]
}

// AddComponent attaches a component to an entity, replacing one of the same type.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent detaches the component of the given type.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the entity's component of the given type.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity carries a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities deletes every entity marked by DestroyEntity.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.marked, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// Clear removes every entity immediately. Used when a level is torn down.
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
	em.marked = make(map[EntityID]bool)
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// Count returns the number of entities, marked ones included.
func (em *EntityManager) Count() int {
	return len(em.components)
}

// GetEntitiesWith returns the alive entities carrying every given component type.
//
// Parameters:
//   - componentTypes: the required component types
//
// Returns:
//   - entity IDs in ascending (creation) order; entities already marked for
//     removal are skipped
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if em.marked[id] {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
