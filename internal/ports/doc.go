// Package ports holds the seams of a tab.
//
// The tab API calls the service ports (consents, cart, session), which the
// app packages implement by dispatching actions into the store. Effects call
// the client ports, implemented by the OCC adapter. The snapshot medium port
// sits under both persistence and cross-tab sync; its memory and bolt
// implementations live in adapters/storage.
package ports
