package session

import (
	"github.com/google/uuid"

	"aisle/internal/cascade"
	"aisle/internal/model"
)

// VendorPatch holds optional vendor field updates; nil fields are left
// untouched.
type VendorPatch struct {
	Name        *string
	UseSum      *bool
	ManualTotal *float64
}

// TagPatch holds optional tag field updates.
type TagPatch struct {
	Name        *string
	UseSum      *bool
	ManualTotal *float64
}

// ItemPatch holds optional item field updates.
type ItemPatch struct {
	Name  *string
	Count *float64
	Price *float64
}

// AddVendor appends a new unselected vendor and returns its id. Returns
// "" when no plan is loaded.
func (s *Session) AddVendor(name string) string {
	prev := s.Plan()
	if prev == nil {
		return ""
	}

	vendor := model.Vendor{
		ID:     uuid.NewString(),
		Name:   name,
		Tags:   []model.Tag{},
		UseSum: true,
	}

	next := *prev
	next.Vendors = append(append([]model.Vendor(nil), prev.Vendors...), vendor)
	s.replace(prev, &next)
	return vendor.ID
}

// UpdateVendor applies the patch to the vendor with the given id.
// Unknown ids are ignored.
func (s *Session) UpdateVendor(vendorID string, patch VendorPatch) {
	prev := s.Plan()
	s.replace(prev, mapVendor(prev, vendorID, func(v model.Vendor) model.Vendor {
		if patch.Name != nil {
			v.Name = *patch.Name
		}
		if patch.UseSum != nil {
			v.UseSum = *patch.UseSum
		}
		if patch.ManualTotal != nil {
			v.ManualTotal = *patch.ManualTotal
		}
		return v
	}))
}

// DeleteVendor removes the vendor with the given id.
func (s *Session) DeleteVendor(vendorID string) {
	prev := s.Plan()
	if prev == nil {
		return
	}

	vendors := make([]model.Vendor, 0, len(prev.Vendors))
	for _, v := range prev.Vendors {
		if v.ID != vendorID {
			vendors = append(vendors, v)
		}
	}
	if len(vendors) == len(prev.Vendors) {
		return
	}

	next := *prev
	next.Vendors = vendors
	s.replace(prev, &next)
}

// ToggleVendor flips the vendor's selection and cascades it through the
// vendor's whole subtree.
func (s *Session) ToggleVendor(vendorID string) {
	prev := s.Plan()
	s.replace(prev, cascade.ToggleVendor(prev, vendorID))
}

// AddTag appends a new unselected tag under the vendor and returns its
// id, or "" when the vendor does not exist.
func (s *Session) AddTag(vendorID, name string) string {
	tag := model.Tag{
		ID:     uuid.NewString(),
		Name:   name,
		Items:  []model.Item{},
		UseSum: true,
	}

	prev := s.Plan()
	next := mapVendor(prev, vendorID, func(v model.Vendor) model.Vendor {
		v.Tags = append(append([]model.Tag(nil), v.Tags...), tag)
		return v
	})
	if next == prev {
		return ""
	}
	s.replace(prev, next)
	return tag.ID
}

// UpdateTag applies the patch to the tag with the given id.
func (s *Session) UpdateTag(vendorID, tagID string, patch TagPatch) {
	prev := s.Plan()
	s.replace(prev, mapTag(prev, vendorID, tagID, func(t model.Tag) model.Tag {
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.UseSum != nil {
			t.UseSum = *patch.UseSum
		}
		if patch.ManualTotal != nil {
			t.ManualTotal = *patch.ManualTotal
		}
		return t
	}))
}

// DeleteTag removes the tag with the given id from the vendor.
func (s *Session) DeleteTag(vendorID, tagID string) {
	prev := s.Plan()
	s.replace(prev, mapVendor(prev, vendorID, func(v model.Vendor) model.Vendor {
		tags := make([]model.Tag, 0, len(v.Tags))
		for _, t := range v.Tags {
			if t.ID != tagID {
				tags = append(tags, t)
			}
		}
		v.Tags = tags
		return v
	}))
}

// ToggleTag flips the tag's selection, forcing its items to match and
// re-deriving the vendor.
func (s *Session) ToggleTag(vendorID, tagID string) {
	prev := s.Plan()
	s.replace(prev, cascade.ToggleTag(prev, vendorID, tagID))
}

// AddItem appends a new unselected item under the tag and returns its
// id, or "" when the vendor or tag does not exist.
func (s *Session) AddItem(vendorID, tagID, name string, count, price float64) string {
	item := model.Item{
		ID:    uuid.NewString(),
		Name:  name,
		Count: count,
		Price: price,
	}

	prev := s.Plan()
	next := mapTag(prev, vendorID, tagID, func(t model.Tag) model.Tag {
		t.Items = append(append([]model.Item(nil), t.Items...), item)
		return t
	})
	if next == prev {
		return ""
	}
	s.replace(prev, next)
	return item.ID
}

// UpdateItem applies the patch to the item with the given id.
func (s *Session) UpdateItem(vendorID, tagID, itemID string, patch ItemPatch) {
	prev := s.Plan()
	s.replace(prev, mapItem(prev, vendorID, tagID, itemID, func(i model.Item) model.Item {
		if patch.Name != nil {
			i.Name = *patch.Name
		}
		if patch.Count != nil {
			i.Count = *patch.Count
		}
		if patch.Price != nil {
			i.Price = *patch.Price
		}
		return i
	}))
}

// DeleteItem removes the item with the given id from the tag.
func (s *Session) DeleteItem(vendorID, tagID, itemID string) {
	prev := s.Plan()
	s.replace(prev, mapTag(prev, vendorID, tagID, func(t model.Tag) model.Tag {
		items := make([]model.Item, 0, len(t.Items))
		for _, i := range t.Items {
			if i.ID != itemID {
				items = append(items, i)
			}
		}
		t.Items = items
		return t
	}))
}

// ToggleItem flips the item's selection and re-derives the tag and
// vendor flags.
func (s *Session) ToggleItem(vendorID, tagID, itemID string) {
	prev := s.Plan()
	s.replace(prev, cascade.ToggleItem(prev, vendorID, tagID, itemID))
}

// mapVendor rebuilds the plan with fn applied to the matching vendor.
// Returns the input plan unchanged (same pointer) when the plan is nil
// or the vendor is missing, which replace treats as a no-op.
func mapVendor(plan *model.WeddingPlan, vendorID string, fn func(model.Vendor) model.Vendor) *model.WeddingPlan {
	if plan == nil {
		return plan
	}
	for i := range plan.Vendors {
		if plan.Vendors[i].ID != vendorID {
			continue
		}
		next := *plan
		next.Vendors = append([]model.Vendor(nil), plan.Vendors...)
		next.Vendors[i] = fn(plan.Vendors[i])
		return &next
	}
	return plan
}

func mapTag(plan *model.WeddingPlan, vendorID, tagID string, fn func(model.Tag) model.Tag) *model.WeddingPlan {
	found := false
	next := mapVendor(plan, vendorID, func(v model.Vendor) model.Vendor {
		for i := range v.Tags {
			if v.Tags[i].ID != tagID {
				continue
			}
			tags := append([]model.Tag(nil), v.Tags...)
			tags[i] = fn(v.Tags[i])
			v.Tags = tags
			found = true
			return v
		}
		return v
	})
	if !found {
		return plan
	}
	return next
}

func mapItem(plan *model.WeddingPlan, vendorID, tagID, itemID string, fn func(model.Item) model.Item) *model.WeddingPlan {
	found := false
	next := mapTag(plan, vendorID, tagID, func(t model.Tag) model.Tag {
		for i := range t.Items {
			if t.Items[i].ID != itemID {
				continue
			}
			items := append([]model.Item(nil), t.Items...)
			items[i] = fn(t.Items[i])
			t.Items = items
			found = true
			return t
		}
		return t
	})
	if !found {
		return plan
	}
	return next
}
