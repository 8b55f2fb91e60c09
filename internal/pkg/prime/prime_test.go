package prime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hargrim/skirmish/internal/pkg/prime"
)

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97, 101, 7919, 2147483647}
	for _, p := range primes {
		assert.True(t, prime.IsPrime(p), "%d should be prime", p)
	}

	composites := []int64{-7, -1, 0, 1, 4, 9, 15, 49, 100, 7917, 2147483649}
	for _, c := range composites {
		assert.False(t, prime.IsPrime(c), "%d should not be prime", c)
	}
}

func TestFloor(t *testing.T) {
	testCases := []struct {
		name string
		in   int64
		want int64
	}{
		{"already prime", 97, 97},
		{"just above a prime", 98, 97},
		{"hundred", 100, 97},
		{"two", 2, 2},
		{"below smallest prime", 1, 0},
		{"zero", 0, 0},
		{"negative", -5, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, prime.Floor(tc.in))
		})
	}
}

func TestNext(t *testing.T) {
	testCases := []struct {
		name string
		in   int64
		want int64
	}{
		{"already prime", 97, 97},
		{"just above a prime", 98, 101},
		{"below smallest prime", 0, 2},
		{"negative", -10, 2},
		{"even gap", 90, 97},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, prime.Next(tc.in))
		})
	}
}
