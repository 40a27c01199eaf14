// Package dispatch mints the simulated submission reference handed back
// when an expedient is sent to the underwriter.
package dispatch

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"

	"quoting-engine/internal/model"
)

var ErrNoPolicy = errors.New("no chosen policy to dispatch")

// folioSeq starts at a random offset and increments per dispatch, so
// two folios minted in the same instant can never collide within a
// process. Only the low six decimal digits are used.
var folioSeq uint64

func init() {
	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		folioSeq = binary.BigEndian.Uint64(b[:])
	}
}

// Dispatch returns a reference of the form FOLIO-<BRAND>-<6 digits>.
func Dispatch(chosen *model.PolicyOffer) (string, error) {
	if chosen == nil {
		return "", ErrNoPolicy
	}
	n := atomic.AddUint64(&folioSeq, 1) % 1000000
	return fmt.Sprintf("FOLIO-%s-%06d", chosen.Brand, n), nil
}
