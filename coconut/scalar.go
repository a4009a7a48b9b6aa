package coconut

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// RandomScalar draws a uniformly random element of Z_o, returned as a
// *big.Int so it composes directly with gnark-crypto's
// ScalarMultiplication methods. fr.Element.SetRandom draws from
// crypto/rand internally; it takes no reader argument.
func RandomScalar() (*big.Int, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return nil, err
	}
	b := new(big.Int)
	e.BigInt(b)
	return b, nil
}

// modOrder reduces a scalar mod o, returning a fresh non-negative value.
func modOrder(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, Order)
}

// addMod returns (a + b) mod o.
func addMod(a, b *big.Int) *big.Int {
	return modOrder(new(big.Int).Add(a, b))
}

// subMod returns (a - b) mod o.
func subMod(a, b *big.Int) *big.Int {
	return modOrder(new(big.Int).Sub(a, b))
}

// mulMod returns (a * b) mod o.
func mulMod(a, b *big.Int) *big.Int {
	return modOrder(new(big.Int).Mul(a, b))
}

// negMod returns (-a) mod o.
func negMod(a *big.Int) *big.Int {
	return modOrder(new(big.Int).Neg(a))
}

// zeroizeScalars overwrites each scalar's backing words with zero. Go's
// garbage collector gives no hard guarantee the original allocation isn't
// copied elsewhere first, but this bounds the window a secret scalar sits
// in memory once the caller is done with it, matching the
// "erased on drop" requirement for ephemeral witnesses and randomizers.
func zeroizeScalars(scalars ...*big.Int) {
	for _, s := range scalars {
		if s == nil {
			continue
		}
		s.SetInt64(0)
	}
}
