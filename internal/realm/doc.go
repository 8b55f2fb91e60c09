// Package realm implements the ownership graph of the simulation: entities
// (heroes and monsters) carry equipment (weapons, armor, purses, backpacks)
// through typed anchor points, and backpacks contain further equipment.
//
// Every edge in the graph is bidirectional and is mutated only through the
// two controlled setters on Equipment, SetOwner and SetContainer. The setters
// validate the whole change before touching either side, so a rejected change
// leaves the graph exactly as it was. The package-internal attach/detach and
// add/remove primitives follow an "other side first" convention: the item's
// back-reference is updated before the owning collection, and each primitive
// panics when called out of order, since that is a programming error rather
// than a user-facing condition.
package realm
