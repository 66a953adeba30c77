// Package jobfile decodes integration jobs from HCL.
//
// A job names a model, its parameters and the region to integrate:
//
//	job "gauss_norm" {
//	  model  = "gauss"
//	  params = { mu = 0, sigma = 1.5 }
//	  axes   = [0]
//
//	  interval {
//	    lower = ["-inf"]
//	    upper = ["inf"]
//	  }
//	}
//
// Bounds are numbers or the strings "-inf", "inf" (concrete infinities) and
// "any" (the open wildcard of that side). Several interval blocks form a
// region of disjoint sub-regions. Optional attributes: numeric (force Monte
// Carlo), draws_per_dim, max_draws.
package jobfile
