package badger

import (
	"fmt"

	"github.com/projecthog/synergy/core"
)

// Key prefixes for different data types
const (
	ledgerEntryPrefix = "idxent"
	checkpointPrefix  = "chkpt"
)

// makeLedgerKey generates a key for a ledger entry by ID.
func makeLedgerKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", ledgerEntryPrefix, id))
}

// ledgerKeyPrefix returns the prefix shared by all ledger entry keys.
func ledgerKeyPrefix() []byte {
	return []byte(ledgerEntryPrefix + ":")
}

// makeCheckpointKey generates a key for a channel checkpoint.
func makeCheckpointKey(channelID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", checkpointPrefix, channelID))
}

// checkpointKeyPrefix returns the prefix shared by all checkpoint keys.
func checkpointKeyPrefix() []byte {
	return []byte(checkpointPrefix + ":")
}
