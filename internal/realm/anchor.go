package realm

// AnchorPoint is a single attachment slot on an Entity. It holds at most one
// piece of equipment. Named anchors ("leftHand", "body", ...) carry placement
// policy on heroes; monsters use anonymous anchors with an empty name.
//
// Occupancy is mutated only by the Equipment ownership setters; external
// callers can inspect an anchor but never write to it.
type AnchorPoint struct {
	name string
	item Equipment
}

// Name returns the anchor's name, or "" for an anonymous anchor
func (a *AnchorPoint) Name() string {
	return a.name
}

// Item returns the equipment held by this anchor, or nil when empty
func (a *AnchorPoint) Item() Equipment {
	return a.item
}

// Empty reports whether the anchor holds no equipment
func (a *AnchorPoint) Empty() bool {
	return a.item == nil
}
