// Package cascade implements the selection propagation rules for the
// vendor/tag/item tree.
//
// Selecting a node is a commitment to include its entire subtree, so a
// toggle cascades downward by forcing every descendant to the new value.
// Ancestors are never forced off: they re-derive their own flag from
// whether any child is still selected, so deselecting one item among many
// does not clear its tag or vendor.
//
// One asymmetry is part of the contract: after an item toggle the vendor
// is always re-derived by OR over its tags, while a tag toggle forces the
// vendor on when the tag is being selected. Both paths agree in outcome
// today, but callers (and tests) depend on the literal rules.
//
// All functions return a new plan built by structural sharing; the input
// plan is never modified. Unknown ids leave the plan untouched.
package cascade

import "aisle/internal/model"

// ToggleItem flips the selection of one item and propagates upward: the
// parent tag is forced on when the item turns on, otherwise derived from
// its remaining items; the vendor is derived from its tags.
func ToggleItem(plan *model.WeddingPlan, vendorID, tagID, itemID string) *model.WeddingPlan {
	vi, ti, ii := indexOfItem(plan, vendorID, tagID, itemID)
	if ii < 0 {
		return plan
	}

	vendor := plan.Vendors[vi]
	tag := vendor.Tags[ti]
	newSelected := !tag.Items[ii].Selected

	items := append([]model.Item(nil), tag.Items...)
	items[ii].Selected = newSelected

	tag.Items = items
	if newSelected {
		tag.Selected = true
	} else {
		tag.Selected = anyItemSelected(items)
	}

	tags := append([]model.Tag(nil), vendor.Tags...)
	tags[ti] = tag

	vendor.Tags = tags
	vendor.Selected = anyTagSelected(tags)

	return replaceVendor(plan, vi, vendor)
}

// ToggleTag flips the selection of one tag and forces every item under it
// to the same value. The vendor is forced on when the tag turns on,
// otherwise derived from the remaining tags.
func ToggleTag(plan *model.WeddingPlan, vendorID, tagID string) *model.WeddingPlan {
	vi, ti := indexOfTag(plan, vendorID, tagID)
	if ti < 0 {
		return plan
	}

	vendor := plan.Vendors[vi]
	tag := vendor.Tags[ti]
	newSelected := !tag.Selected

	tag.Selected = newSelected
	tag.Items = setAllItems(tag.Items, newSelected)

	tags := append([]model.Tag(nil), vendor.Tags...)
	tags[ti] = tag

	vendor.Tags = tags
	if newSelected {
		vendor.Selected = true
	} else {
		vendor.Selected = anyTagSelected(tags)
	}

	return replaceVendor(plan, vi, vendor)
}

// ToggleVendor flips the selection of one vendor and forces its whole
// subtree, every tag and every item, to the same value.
func ToggleVendor(plan *model.WeddingPlan, vendorID string) *model.WeddingPlan {
	vi := indexOfVendor(plan, vendorID)
	if vi < 0 {
		return plan
	}

	vendor := plan.Vendors[vi]
	newSelected := !vendor.Selected

	vendor.Selected = newSelected
	tags := append([]model.Tag(nil), vendor.Tags...)
	for i := range tags {
		tags[i].Selected = newSelected
		tags[i].Items = setAllItems(tags[i].Items, newSelected)
	}
	vendor.Tags = tags

	return replaceVendor(plan, vi, vendor)
}

func setAllItems(items []model.Item, selected bool) []model.Item {
	out := append([]model.Item(nil), items...)
	for i := range out {
		out[i].Selected = selected
	}
	return out
}

func anyItemSelected(items []model.Item) bool {
	for _, it := range items {
		if it.Selected {
			return true
		}
	}
	return false
}

func anyTagSelected(tags []model.Tag) bool {
	for _, t := range tags {
		if t.Selected {
			return true
		}
	}
	return false
}

func replaceVendor(plan *model.WeddingPlan, vi int, vendor model.Vendor) *model.WeddingPlan {
	next := *plan
	next.Vendors = append([]model.Vendor(nil), plan.Vendors...)
	next.Vendors[vi] = vendor
	return &next
}

func indexOfVendor(plan *model.WeddingPlan, vendorID string) int {
	if plan == nil {
		return -1
	}
	for i := range plan.Vendors {
		if plan.Vendors[i].ID == vendorID {
			return i
		}
	}
	return -1
}

func indexOfTag(plan *model.WeddingPlan, vendorID, tagID string) (vi, ti int) {
	vi = indexOfVendor(plan, vendorID)
	if vi < 0 {
		return -1, -1
	}
	for i := range plan.Vendors[vi].Tags {
		if plan.Vendors[vi].Tags[i].ID == tagID {
			return vi, i
		}
	}
	return vi, -1
}

func indexOfItem(plan *model.WeddingPlan, vendorID, tagID, itemID string) (vi, ti, ii int) {
	vi, ti = indexOfTag(plan, vendorID, tagID)
	if ti < 0 {
		return vi, ti, -1
	}
	for i := range plan.Vendors[vi].Tags[ti].Items {
		if plan.Vendors[vi].Tags[ti].Items[i].ID == itemID {
			return vi, ti, i
		}
	}
	return vi, ti, -1
}
