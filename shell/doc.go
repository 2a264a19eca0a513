// Package shell contains the page router and phased resource loader.
//
// Allowed here:
// - route table and alias resolution, bundle resolution contracts
// - the navigation state machine (fade, resolve, insert, init, reveal)
// - glyph/style registries, nav bar selection sync, page-changed events
//
// Not allowed here:
// - concrete page content or page business logic
// - data access; pages own their collaborators
package shell
