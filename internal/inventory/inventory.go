// Package inventory stores collected items and the quick-use hotbar.
package inventory

import (
	"errors"

	"github.com/tomz197/mythbusters/internal/data"
)

// MaxHotbar is the number of hotbar slots that can ever be unlocked.
const MaxHotbar = 5

var (
	ErrSlotEmpty = errors.New("hotbar slot empty")
	ErrBadSlot   = errors.New("hotbar slot out of range")
)

// Inventory is the player's bag. Items added while a hotbar slot is free
// are also placed on the hotbar; items that did not fit move up when a
// slot frees.
type Inventory struct {
	items      []data.Item
	hotbar     [MaxHotbar]*data.Item
	hotbarSize int
}

// New creates an inventory with size unlocked hotbar slots.
func New(size int) *Inventory {
	inv := &Inventory{}
	inv.SetHotbarSize(size)
	return inv
}

// Add stores an item and puts it into the first free hotbar slot.
func (inv *Inventory) Add(item data.Item) {
	inv.items = append(inv.items, item)
	for i := 0; i < inv.hotbarSize; i++ {
		if inv.hotbar[i] == nil {
			it := item
			inv.hotbar[i] = &it
			return
		}
	}
}

// Items returns the bag contents.
func (inv *Inventory) Items() []data.Item {
	out := make([]data.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of items in the bag.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Hotbar returns the item in a slot, or nil.
func (inv *Inventory) Hotbar(slot int) *data.Item {
	if slot < 0 || slot >= inv.hotbarSize {
		return nil
	}
	return inv.hotbar[slot]
}

// HotbarSize returns the number of unlocked slots.
func (inv *Inventory) HotbarSize() int {
	return inv.hotbarSize
}

// SetHotbarSize unlocks the first n slots. Slots beyond n are emptied.
func (inv *Inventory) SetHotbarSize(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxHotbar {
		n = MaxHotbar
	}
	for i := n; i < MaxHotbar; i++ {
		inv.hotbar[i] = nil
	}
	inv.hotbarSize = n
	inv.refill()
}

// RemoveFromHotbar empties a slot without touching the bag. Out of range
// slots are ignored.
func (inv *Inventory) RemoveFromHotbar(slot int) {
	if slot < 0 || slot >= MaxHotbar {
		return
	}
	inv.hotbar[slot] = nil
}

// Use takes the item out of a hotbar slot and the bag and returns it.
func (inv *Inventory) Use(slot int) (data.Item, error) {
	if slot < 0 || slot >= inv.hotbarSize {
		return data.Item{}, ErrBadSlot
	}
	item := inv.hotbar[slot]
	if item == nil {
		return data.Item{}, ErrSlotEmpty
	}
	inv.hotbar[slot] = nil
	for i := range inv.items {
		if inv.items[i].Name == item.Name {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			break
		}
	}
	inv.refill()
	return *item, nil
}

// refill puts bag items that have no hotbar slot yet into free unlocked
// slots, oldest first.
func (inv *Inventory) refill() {
	slotted := make(map[string]int)
	for i := 0; i < inv.hotbarSize; i++ {
		if it := inv.hotbar[i]; it != nil {
			slotted[it.Name]++
		}
	}
	next := 0
	for i := 0; i < inv.hotbarSize; i++ {
		if inv.hotbar[i] != nil {
			continue
		}
		for ; next < len(inv.items); next++ {
			it := inv.items[next]
			if slotted[it.Name] > 0 {
				slotted[it.Name]--
				continue
			}
			inv.hotbar[i] = &it
			next++
			break
		}
	}
}

// Clear empties the bag and every hotbar slot.
func (inv *Inventory) Clear() {
	inv.items = inv.items[:0]
	for i := range inv.hotbar {
		inv.hotbar[i] = nil
	}
}
