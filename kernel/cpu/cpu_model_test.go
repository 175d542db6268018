// +build !riscv64

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestModelBacksDefaultAccessors verifies that, with no fn vars swapped, the
// register primitive and the flush path route to the shared software model.
func TestModelBacksDefaultAccessors(t *testing.T) {
	// softRegs persists across tests; compare against deltas and restore
	// the scratch slot on the way out.
	defer func(origScratch uint64) {
		softRegs.Write(RegSscratch, origScratch)
	}(softRegs.Read(RegSscratch))

	WriteSscratch(0x5caffeed)
	assert.Equal(t, uint64(0x5caffeed), softRegs.Read(RegSscratch))
	assert.Equal(t, uint64(0x5caffeed), ReadSscratch())

	flushes := softRegs.TLBFlushes()
	FlushTLB()
	assert.Equal(t, flushes+1, softRegs.TLBFlushes())
}
