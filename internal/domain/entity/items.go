package entity

// UpsertItem replaces the line item with the same ID in place, or appends
// the item when no match exists. Display order is insertion order.
func (inv *Invoice) UpsertItem(item InvoiceItem) {
	for i, it := range inv.Items {
		if it.ID == item.ID {
			inv.Items[i] = item
			return
		}
	}
	inv.Items = append(inv.Items, item)
}

// RemoveItem deletes the line item with the given ID. Removing an absent ID
// is a no-op.
func (inv *Invoice) RemoveItem(id string) {
	for i, it := range inv.Items {
		if it.ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return
		}
	}
}
