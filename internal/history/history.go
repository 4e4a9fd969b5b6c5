// Package history tracks trajectory runs in a SQL database.
package history

import (
	"sync"

	"github.com/huangsam/trajectory/internal/contract"
)

// HistoryStoreManager holds the HistoryStore for the running process.
type HistoryStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	history      contract.HistoryStore
}

var _ contract.StoreManager = &HistoryStoreManager{} // Compile-time check

// GetHistoryStore returns the HistoryStore, or nil when tracking is not initialized.
func (mgr *HistoryStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
