// SPDX-License-Identifier: MIT
// Package space: coverage and volume.
//
// Purpose:
//   - Covers answers "may an integral declared over candidate serve request?"
//     on a shared axis subset. It is the only place wildcards are interpreted.
//   - HyperVolume/Volumes compute Σ Π(upper−lower) and refuse wildcards.
//
// Determinism:
//   - Fixed sub-region and axis traversal order; no allocation beyond index maps.

package space

import "fmt"

// Covers reports whether candidate, restricted to axes, covers every
// sub-region of request on those axes: for each request sub-region some
// candidate sub-region is equal or wider on every axis in axes.
//
// Errors:
//   - ErrNilRegion when either region is nil.
//   - ErrUnknownAxis when axes is not a subset of both regions.
//
// Complexity:
//   - Time O(|request|·|candidate|·|axes|).
func Covers(candidate, request *Region, axes []int) (bool, error) {
	if candidate == nil || request == nil {
		return false, regionErrorf(opCovers, ErrNilRegion)
	}
	ci, err := candidate.indices(axes)
	if err != nil {
		return false, fmt.Errorf("%s: candidate: %w", opCovers, err)
	}
	ri, err := request.indices(axes)
	if err != nil {
		return false, fmt.Errorf("%s: request: %w", opCovers, err)
	}

	for _, req := range request.limits {
		if !anyCovers(candidate.limits, ci, req, ri) {
			return false, nil
		}
	}

	return true, nil
}

// anyCovers reports whether one of cands covers req on the aligned index sets.
func anyCovers(cands []Limits, ci []int, req Limits, ri []int) bool {
	for _, c := range cands {
		ok := true
		for j := range ci {
			if !coversLower(c.Lower[ci[j]], req.Lower[ri[j]]) || !coversUpper(c.Upper[ci[j]], req.Upper[ri[j]]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}

	return false
}

// HyperVolume returns Σ over sub-regions of Π(upper−lower) over axes.
//
// Errors:
//   - ErrNilRegion, ErrUnknownAxis, ErrUnboundedVolume (wildcard on axes).
func HyperVolume(r *Region, axes []int) (float64, error) {
	vols, err := Volumes(r, axes)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, v := range vols {
		total += v
	}

	return total, nil
}

// Volumes returns the per-sub-region volume terms of HyperVolume, in order.
// An empty axes slice yields a unit volume per sub-region.
func Volumes(r *Region, axes []int) ([]float64, error) {
	if r == nil {
		return nil, regionErrorf(opHyperVolume, ErrNilRegion)
	}
	idx, err := r.indices(axes)
	if err != nil {
		return nil, regionErrorf(opHyperVolume, err)
	}

	out := make([]float64, len(r.limits))
	var lo, hi float64
	var okLo, okHi bool
	for i, l := range r.limits {
		v := 1.0
		for j, k := range idx {
			lo, okLo = l.Lower[k].Value()
			hi, okHi = l.Upper[k].Value()
			if !okLo || !okHi {
				return nil, fmt.Errorf("%s: axis %d: %w", opHyperVolume, axes[j], ErrUnboundedVolume)
			}
			v *= hi - lo
		}
		out[i] = v
	}

	return out, nil
}
