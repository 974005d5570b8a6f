// Package fixtures builds the reference container models shared by tests and examples.
package fixtures

import "github.com/katalvlaran/envision/quantity"

// Tank is the two-quantity model: inflow I{0,+} influences volume V{0,+,max}.
func Tank() *quantity.Model {
	m := quantity.NewModel("tank")
	must(m.AddQuantity("I", quantity.Landmarks("0", "+"), quantity.Directions, quantity.Exogenous()))
	must(m.AddQuantity("V", quantity.Landmarks("0", "+", "max"), quantity.Directions))
	must(m.AddInfluence("I", "V", 1))
	return m
}

// Container is the three-quantity sink model: inflow I, volume V and outflow O with
// I+ and I- influences on V, V P+ O, and value correspondences on max and 0.
func Container() *quantity.Model {
	m := quantity.NewModel("container")
	must(m.AddQuantity("I", quantity.Landmarks("0", "+"), quantity.Directions, quantity.Exogenous()))
	must(m.AddQuantity("V", quantity.Landmarks("0", "+", "max"), []int{0, -1, 1}))
	must(m.AddQuantity("O", quantity.Landmarks("0", "+", "max"), []int{0, -1, 1}))
	must(m.AddInfluence("I", "V", 1))
	must(m.AddInfluence("O", "V", -1))
	must(m.AddProportional("V", "O", 1))
	must(m.AddCorrespondence("V", "max", "O", "max"))
	must(m.AddCorrespondence("V", "0", "O", "0"))
	return m
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
