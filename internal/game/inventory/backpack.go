package inventory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Backpack errors.
var (
	// ErrShortage is returned when a backpack holds fewer units than requested.
	ErrShortage = errors.New("not enough items")
	// ErrNoRoom is returned when an addition needs more slots than are free.
	ErrNoRoom = errors.New("not enough slots")
	// ErrTooHeavy is returned when an addition would exceed the weight limit.
	ErrTooHeavy = errors.New("too heavy")
)

// ItemInstance is one occupied slot.
type ItemInstance struct {
	InstanceID string
	ItemDefID  string
	Quantity   int
}

// Backpack holds item stacks within a slot and a weight limit.
type Backpack struct {
	MaxSlots  int
	MaxWeight float64
	items     []ItemInstance
}

// NewBackpack returns an empty Backpack.
//
// Precondition: maxSlots >= 0 and maxWeight >= 0.
func NewBackpack(maxSlots int, maxWeight float64) *Backpack {
	return &Backpack{MaxSlots: maxSlots, MaxWeight: maxWeight}
}

// Add stores quantity units of itemDefID, topping up existing partial
// stacks in backpack order before opening new ones.
//
// Precondition: quantity > 0.
// Postcondition: on error the backpack is unchanged.
func (b *Backpack) Add(itemDefID string, quantity int, reg *Registry) error {
	def, ok := reg.Item(itemDefID)
	if !ok {
		return fmt.Errorf("backpack: unknown item %q", itemDefID)
	}
	if quantity <= 0 {
		return fmt.Errorf("backpack: quantity must be > 0, got %d", quantity)
	}
	if held := b.Weight(reg); held+float64(quantity)*def.Weight > b.MaxWeight {
		return fmt.Errorf("backpack: adding %d %q to %.2f of %.2f: %w", quantity, itemDefID, held, b.MaxWeight, ErrTooHeavy)
	}

	limit := def.StackLimit()
	free := 0
	for _, inst := range b.items {
		if inst.ItemDefID == itemDefID {
			free += limit - inst.Quantity
		}
	}
	overflow := max(quantity-free, 0)
	newSlots := (overflow + limit - 1) / limit
	if len(b.items)+newSlots > b.MaxSlots {
		return fmt.Errorf("backpack: %d %q needs %d new slots with %d free: %w",
			quantity, itemDefID, newSlots, b.MaxSlots-len(b.items), ErrNoRoom)
	}

	remaining := quantity
	for i := range b.items {
		if remaining == 0 {
			break
		}
		if b.items[i].ItemDefID != itemDefID {
			continue
		}
		take := min(limit-b.items[i].Quantity, remaining)
		b.items[i].Quantity += take
		remaining -= take
	}
	for remaining > 0 {
		n := min(limit, remaining)
		b.items = append(b.items, ItemInstance{
			InstanceID: uuid.NewString(),
			ItemDefID:  itemDefID,
			Quantity:   n,
		})
		remaining -= n
	}
	return nil
}

// Items returns a copy of every occupied slot in backpack order.
func (b *Backpack) Items() []ItemInstance {
	out := make([]ItemInstance, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of occupied slots.
func (b *Backpack) Len() int {
	return len(b.items)
}

// Weight returns the carried weight. Items unknown to reg weigh nothing.
func (b *Backpack) Weight(reg *Registry) float64 {
	var total float64
	for _, inst := range b.items {
		if def, ok := reg.Item(inst.ItemDefID); ok {
			total += float64(inst.Quantity) * def.Weight
		}
	}
	return total
}

// Count returns the total quantity of itemDefID across all stacks.
//
// Postcondition: result >= 0.
func (b *Backpack) Count(itemDefID string) int {
	n := 0
	for _, inst := range b.items {
		if inst.ItemDefID == itemDefID {
			n += inst.Quantity
		}
	}
	return n
}

// Consume removes quantity units of itemDefID, draining stacks in backpack
// order. onEach, when non-nil, is called once per stack drawn from with the
// stack as it was before consumption and the units taken from it.
// Without allowPartial a shortfall consumes nothing and returns ErrShortage;
// with allowPartial everything available is consumed.
//
// Precondition: quantity > 0.
// Postcondition: Returns the units consumed. On error the backpack is unchanged.
func (b *Backpack) Consume(itemDefID string, quantity int, onEach func(ItemInstance, int), allowPartial bool) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("backpack: quantity must be > 0")
	}
	have := b.Count(itemDefID)
	if have < quantity && !allowPartial {
		return 0, fmt.Errorf("backpack: consuming %d of %q with %d held: %w", quantity, itemDefID, have, ErrShortage)
	}

	remaining := quantity
	kept := b.items[:0]
	for _, inst := range b.items {
		if remaining == 0 || inst.ItemDefID != itemDefID {
			kept = append(kept, inst)
			continue
		}
		take := min(inst.Quantity, remaining)
		if onEach != nil {
			onEach(inst, take)
		}
		remaining -= take
		inst.Quantity -= take
		if inst.Quantity > 0 {
			kept = append(kept, inst)
		}
	}
	clear(b.items[len(kept):])
	b.items = kept
	return quantity - remaining, nil
}
