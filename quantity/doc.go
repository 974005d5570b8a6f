// Package quantity defines the causal model consumed by the envisioning engine:
// quantities with an ordered magnitude space (landmarks) and a derivative space,
// plus the three relation kinds that constrain them.
//
// Model construction is additive and order-preserving:
//
//	m := quantity.NewModel("tank")
//	_ = m.AddQuantity("I", quantity.Landmarks("0", "+"), quantity.Directions, quantity.Exogenous())
//	_ = m.AddQuantity("V", quantity.Landmarks("0", "+", "max"), quantity.Directions)
//	_ = m.AddInfluence("I", "V", +1)
//
// Relations are resolved against already-declared quantities, so a relation that
// references an unknown quantity fails immediately with ErrUnknownQuantity.
// Validate re-checks the whole model and is called again by the graph builder
// before any reasoning starts.
//
// Landmark signs:
//
//	Each Landmark carries an explicit Sign used by influence resolution.
//	Landmarks(...) infers it from the name: "-" (or a "-" prefix) is Negative,
//	"0" is Zero, the lowest landmark is Zero unless negative, the rest Positive.
//	Build []Landmark by hand to override the inference.
//
// A Model is not safe for concurrent mutation. Once reasoning starts it is
// treated as read-only and may be shared freely across goroutines.
package quantity
