// Package identifier generates the prefixed ids used for rows on the native
// schema, e.g. "donor_m1x2y3z4_a9f3k". Legacy rows keep their storage-assigned
// numeric ids, so this is only used when the native adapter is active.
package identifier

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const randomLen = 5

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns a collision-resistant id: prefix, millisecond timestamp in
// base36, and a short random suffix. Uniqueness is ultimately enforced by the
// storage primary key; a clash surfaces as a constraint violation.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return fmt.Sprintf("%s_%s_%s", prefix, ts, randomSuffix(randomLen))
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// fall back to a time-derived byte rather than panicking.
			buf[i] = alphabet[time.Now().UnixNano()%int64(len(alphabet))]
			continue
		}
		buf[i] = alphabet[v.Int64()]
	}
	return string(buf)
}
