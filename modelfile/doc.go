// Package modelfile loads causal models from YAML.
//
// A model file declares quantities, relations and optional run settings:
//
//	name: tank
//	quantities:
//	  - name: I
//	    magnitudes: ["0", "+"]
//	    derivatives: [-1, 0, 1]
//	    exogenous: true
//	  - name: V
//	    magnitudes: ["0", "+", {name: max, sign: "+"}]
//	    derivatives: [-1, 0, 1]
//	influences:
//	  - {from: I, to: V, weight: 1}
//	run:
//	  workers: 4
//	  max_candidates: 100000
//
// A magnitude is either a bare name, whose sign is inferred the way
// quantity.Landmarks does, or a mapping with an explicit sign ("-", "0", "+").
//
// Decoding happens in three passes: strict YAML (unknown keys are rejected),
// struct-tag validation, then the quantity builder's own semantic checks.
// Every failure wraps ErrInvalidFile.
package modelfile
