package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// secp256k1 generator point, i.e. the public key of private key 1.
const generatorPubkey = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
	"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"

func TestPubkeyToAddress(t *testing.T) {
	addr, err := PubkeyToAddress(Hex2Bytes(generatorPubkey))
	require.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", addr.Hex())
}

func TestPubkeyToAddressLength(t *testing.T) {
	tests := []struct {
		name   string
		pubkey []byte
	}{
		{"empty", nil},
		{"compressed", make([]byte, 33)},
		{"prefixed", make([]byte, 65)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PubkeyToAddress(tt.pubkey)
			require.Error(t, err)
		})
	}
}

func TestBytesToAddressCrop(t *testing.T) {
	long := make([]byte, 32)
	long[12] = 0xff
	long[31] = 0x01
	addr := BytesToAddress(long)
	assert.Equal(t, byte(0xff), addr[0])
	assert.Equal(t, byte(0x01), addr[19])

	short := BytesToAddress([]byte{0x01, 0x02})
	assert.Equal(t, HexToAddress("0x0000000000000000000000000000000000000102"), short)
}

func TestAddressTextRoundTrip(t *testing.T) {
	addr := HexToAddress("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf")
	text, err := addr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", string(text))

	var decoded Address
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, addr, decoded)
	assert.Error(t, decoded.UnmarshalText([]byte("0x1234")))
}

func TestIsHexAddress(t *testing.T) {
	assert.True(t, IsHexAddress("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"))
	assert.True(t, IsHexAddress("7e5f4552091a69125d5dfcb7b8c2659029395bdf"))
	assert.False(t, IsHexAddress("0x7e5f"))
	assert.False(t, IsHexAddress("0xzz5f4552091a69125d5dfcb7b8c2659029395bdf"))
}
