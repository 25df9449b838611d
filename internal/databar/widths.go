package databar

// rssCombins returns the number of combinations of r selected from n,
// ported from rss_combins in rss.c (itself from BSI's published RSS-14 /
// DataBar reference, used under the terms recorded in rss.c's header).
func rssCombins(n, r int) int {
	var maxDenom, minDenom int
	if n-r > r {
		minDenom, maxDenom = r, n-r
	} else {
		minDenom, maxDenom = n-r, r
	}
	val := 1
	j := 1
	for i := n; i > maxDenom; i-- {
		val *= i
		if j <= minDenom {
			val /= j
			j++
		}
	}
	for ; j <= minDenom; j++ {
		val /= j
	}
	return val
}

// getRSSwidths expands a value into `elements` bar/space widths summing to
// n modules, the combinatorial-rank enumeration ported 1:1 from
// getRSSwidths in rss.c. When noNarrow is false, patterns with no
// one-module-wide element are excluded; when it is true, no such
// restriction applies.
func getRSSwidths(val, n, elements, maxWidth int, noNarrow bool) []int {
	widths := make([]int, elements)
	narrowMask := 0
	var bar int
	for bar = 0; bar < elements-1; bar++ {
		var elmWidth, subVal int
		narrowMask |= 1 << uint(bar)
		for elmWidth = 1; ; elmWidth++ {
			subVal = rssCombins(n-elmWidth-1, elements-bar-2)
			if !noNarrow && narrowMask == 0 && (n-elmWidth-(elements-bar-1) >= elements-bar-1) {
				subVal -= rssCombins(n-elmWidth-(elements-bar), elements-bar-2)
			}
			if elements-bar-1 > 1 {
				lessVal := 0
				for mxwElement := n - elmWidth - (elements - bar - 2); mxwElement > maxWidth; mxwElement-- {
					lessVal += rssCombins(n-elmWidth-mxwElement-1, elements-bar-3)
				}
				subVal -= lessVal * (elements - 1 - bar)
			} else if n-elmWidth > maxWidth {
				subVal--
			}
			val -= subVal
			if val < 0 {
				break
			}
			narrowMask &^= 1 << uint(bar)
		}
		val += subVal
		n -= elmWidth
		widths[bar] = elmWidth
	}
	widths[bar] = n
	return widths
}

// oddEvenWidths splits a 12-bit data-character value vs into its eight
// element widths (four odd-position, four even-position, interleaved),
// per the group lookup and double getRSSwidths call in rssexp_binary_string
// / rssexpanded_cc's main loop.
func oddEvenWidths(vs int) [8]int {
	var group int
	switch {
	case vs <= 347:
		group = 0
	case vs <= 1387:
		group = 1
	case vs <= 2947:
		group = 2
	case vs <= 3987:
		group = 3
	default:
		group = 4
	}
	vOdd := (vs - gSumExp[group]) / tEvenExp[group]
	vEven := (vs - gSumExp[group]) % tEvenExp[group]

	odd := getRSSwidths(vOdd, modulesOddExp[group], 4, widestOddExp[group], false)
	even := getRSSwidths(vEven, modulesEvenExp[group], 4, widestEvenExp[group], true)

	var out [8]int
	for i := 0; i < 4; i++ {
		out[i*2] = odd[i]
		out[i*2+1] = even[i]
	}
	return out
}
