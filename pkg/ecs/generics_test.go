package ecs

import "testing"

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find the position")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("got (%v, %v), want (3, 4)", pos.X, pos.Y)
	}

	if HasComponent[*testHealthComponent](em, id) {
		t.Error("HasComponent should be false before adding health")
	}
	if _, ok := GetComponent[*testHealthComponent](em, id); ok {
		t.Error("GetComponent should miss an absent type")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("RemoveComponent should detach the position")
	}
}

func TestGenericQueries(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	AddComponent(em, a, &testPositionComponent{})
	b := em.CreateEntity()
	AddComponent(em, b, &testPositionComponent{})
	AddComponent(em, b, &testHealthComponent{})

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 {
		t.Errorf("GetEntitiesWith1: got %d entities, want 2", len(got))
	}
	got := GetEntitiesWith2[*testPositionComponent, *testHealthComponent](em)
	if len(got) != 1 || got[0] != b {
		t.Errorf("GetEntitiesWith2: got %v, want [%d]", got, b)
	}
}
