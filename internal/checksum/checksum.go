// Package checksum collects the weighted-sum check-digit and check-codeword
// routines shared by the Code-128 family and the DataBar Expanded encoder:
// mod-103 (Code-128 itself, c128_expand in code128.c), mod-211 (DataBar
// Expanded, rssexpanded_cc in rss.c), mod-36 (DPD), mod-43 (HIBC-128), and
// mod-10 (GS1/EAN-14/NVE-18), per spec.md's "Weighted checksum" glossary
// entry.
package checksum

// Mod103 computes the Code-128 check codeword: the sum of codeword[i]*i
// (codeword[0] has weight 1, being the Start character) taken mod 103, per
// c128_expand in code128.c.
func Mod103(codewords []int) int {
	total := codewords[0]
	for i := 1; i < len(codewords); i++ {
		total += codewords[i] * i
	}
	return total % 103
}

// Mod211Check computes the DataBar Expanded check character value from the
// data characters' element widths, weighted per row, per the "7.2.6 Check
// character" computation in rssexpanded_cc: check = 211*(dataChars-3) +
// (weightedSum mod 211).
func Mod211Check(dataChars int, weightedSum int) int {
	return 211*(dataChars-3) + weightedSum%211
}

// WeightedSum sums widths[i][j] * weights[row(i)*8+j] over all data
// characters i and the 8 elements j within each, where rowOf maps a data
// character index to its weight-table row (weight_rows in rss.c).
func WeightedSum(widths [][8]int, weights []int, rowOf func(i int) int) int {
	sum := 0
	for i, w := range widths {
		row := rowOf(i)
		for j := 0; j < 8; j++ {
			sum += w[j] * weights[row*8+j]
		}
	}
	return sum
}

// Mod10 computes the GS1/EAN check digit over ASCII decimal digits: from the
// rightmost digit, alternate weights 3,1,3,1... summing, then
// (10 - sum%10) % 10.
func Mod10(digits []byte) byte {
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}
	return byte((10-sum%10)%10) + '0'
}

// Mod36 computes the DPD mod-36 check character over an alphabet (KRSET:
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"), per the running-checksum loop in
// code128_based.c's dpd(): cd starts at mod, accumulates posn(alphabet,ch),
// doubles (mod mod+1), for every input character; final check is
// mod+1-cd (or 0 if that equals mod).
func Mod36(data []byte, alphabet string) byte {
	const mod = 36
	cd := mod
	for _, ch := range data {
		cd += indexOf(alphabet, ch)
		if cd > mod {
			cd -= mod
		}
		cd *= 2
		if cd >= mod+1 {
			cd -= mod + 1
		}
	}
	cd = mod + 1 - cd
	if cd == mod {
		cd = 0
	}
	if cd < 10 {
		return byte(cd) + '0'
	}
	return byte(cd-10) + 'A'
}

// Mod43 computes the HIBC mod-43 check character over the HIBC alphabet.
func Mod43(data []byte, alphabet string) byte {
	sum := 0
	for _, ch := range data {
		sum += indexOf(alphabet, ch)
	}
	return alphabet[sum%43]
}

func indexOf(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
