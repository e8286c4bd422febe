package catcheck

// Inventory maps catalog file names to their pre-simplification
// snapshots, as recovered from the before-inventory report.
type Inventory map[string]*Snapshot

// Get returns the snapshot for the named catalog. It returns ENOTFOUND
// when the inventory has no section for the catalog, so a missing
// section is never mistaken for a genuinely empty catalog.
func (inv Inventory) Get(name string) (*Snapshot, error) {
	s, ok := inv[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "catalog %q not found in inventory", name)
	}
	return s, nil
}

// InventoryReader recovers before-snapshots from the plain-text
// inventory report covering multiple catalogs.
type InventoryReader interface {
	ReadInventory(text string) (Inventory, error)
}
