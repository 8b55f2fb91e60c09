// Package prime provides the primality helpers used across the domain:
// hit-point normalization and armor identifier generation.
package prime

// IsPrime reports whether n is a prime number.
//
// Trial division is deliberate: callers pass hit points (small) or 31-bit
// identifiers, so the sqrt(n) loop stays well under 50k iterations.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for d := int64(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

// Floor returns the largest prime less than or equal to n, or 0 when no such
// prime exists (n < 2). Used to re-normalize hit points after combat.
func Floor(n int64) int64 {
	for ; n >= 2; n-- {
		if IsPrime(n) {
			return n
		}
	}
	return 0
}

// Next returns the smallest prime greater than or equal to n. For n < 2 it
// returns 2. Used to probe upward from a random draw when minting armor
// identifiers.
func Next(n int64) int64 {
	if n < 2 {
		return 2
	}
	for {
		if IsPrime(n) {
			return n
		}
		n++
	}
}
