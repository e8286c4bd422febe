package mock

import "github.com/kpawlak/catcheck"

var _ catcheck.InventoryReader = (*InventoryReader)(nil)

// InventoryReader is a mock implementation of catcheck.InventoryReader.
type InventoryReader struct {
	ReadInventoryFn func(text string) (catcheck.Inventory, error)
}

func (r *InventoryReader) ReadInventory(text string) (catcheck.Inventory, error) {
	return r.ReadInventoryFn(text)
}
