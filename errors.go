package silo

import "fmt"

type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is currently locked"
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on archetype: %s", e.Component.ID())
}
