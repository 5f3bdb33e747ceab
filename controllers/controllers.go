package controllers

import (
	"glowbook-backend/services"
	"glowbook-backend/store"
)

// Shared collaborators, wired once at startup. All state mutation goes
// through the identity and wizard services; handlers never touch the store
// keys those services own.
var (
	kv        *store.Store
	identity  *services.IdentityService
	wizard    *services.WizardService
	resolver  *services.LocationResolver
	discovery *services.DiscoveryService
	payment   *services.PaymentService
)

func Init(
	st *store.Store,
	id *services.IdentityService,
	wz *services.WizardService,
	loc *services.LocationResolver,
	disc *services.DiscoveryService,
	pay *services.PaymentService,
) {
	kv = st
	identity = id
	wizard = wz
	resolver = loc
	discovery = disc
	payment = pay
}
