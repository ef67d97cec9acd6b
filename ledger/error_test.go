package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrongNetworkError(t *testing.T) {
	err := WrongNetworkError{
		Address:  "tcro1test",
		Expected: "cro",
	}

	errStr := err.Error()
	assert.Contains(t, errStr, "tcro1test")
	assert.Contains(t, errStr, `"cro"`)

	assert.ErrorIs(t, err, ErrWrongNetwork)
	assert.NotErrorIs(t, err, ErrBech32)
}

func TestBech32Error(t *testing.T) {
	inner := errors.New("invalid checksum")
	err := Bech32Error{Err: inner}

	assert.Contains(t, err.Error(), "malformed bech32 address")
	assert.Contains(t, err.Error(), "invalid checksum")

	assert.ErrorIs(t, err, ErrBech32)
	assert.NotErrorIs(t, err, ErrWrongNetwork)
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestInvalidRootLengthError(t *testing.T) {
	err := InvalidRootLengthError{Length: 20}

	assert.Contains(t, err.Error(), "20")

	var rootLenErr InvalidRootLengthError
	assert.ErrorAs(t, error(err), &rootLenErr)
	assert.Equal(t, 20, rootLenErr.Length)
}

func TestUnsupportedTxTypeError(t *testing.T) {
	err := UnsupportedTxTypeError{Type: TxTypeTransfer}

	assert.Contains(t, err.Error(), "unsupported transaction type")
	assert.Contains(t, err.Error(), TxTypeTransfer.String())
}

func TestInvalidViewKeyError(t *testing.T) {
	inner := errors.New("invalid public key")
	err := InvalidViewKeyError{Err: inner}

	assert.Contains(t, err.Error(), "invalid view key")
	assert.Equal(t, inner, errors.Unwrap(err))
}
