package silo

import "github.com/TheBitDrifter/silo/column"

// Config holds global configuration for the storage layer
var Config config = config{}

type config struct {
	storeCapacity int
	storeEvents   column.Events
}

// SetStoreCapacity sets the initial per-field buffer capacity for new
// archetype stores (0 means the column package default).
func (c *config) SetStoreCapacity(n int) {
	c.storeCapacity = n
}

// SetStoreEvents configures the store event callbacks
func (c *config) SetStoreEvents(ev column.Events) {
	c.storeEvents = ev
}
