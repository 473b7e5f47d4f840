package common

import (
	"github.com/holiman/uint256"
)

// U256 is a 256-bit unsigned integer that marshals as a JSON string with 0x prefix.
type U256 uint256.Int

// NewU256 widens v to 256 bits.
func NewU256(v uint64) *U256 {
	return (*U256)(uint256.NewInt(v))
}

// ToInt returns u as a uint256.Int.
func (u *U256) ToInt() *uint256.Int {
	return (*uint256.Int)(u)
}

// Uint64 returns the lower 64 bits of u.
func (u *U256) Uint64() uint64 {
	return u.ToInt().Uint64()
}

// String returns the hex encoding of u.
func (u *U256) String() string {
	return u.ToInt().Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *U256) UnmarshalText(input []byte) error {
	v, err := uint256.FromHex(string(input))
	if err != nil {
		return err
	}
	*u = U256(*v)
	return nil
}
