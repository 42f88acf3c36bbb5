// Package budget computes monetary aggregates over a wedding plan tree.
// All functions are pure: they read the plan and never modify it.
package budget

import "aisle/internal/model"

// Summary splits a budget into gross cost, payments made, and the balance
// still owed.
type Summary struct {
	Total     float64
	Paid      float64
	Remaining float64
}

// Calculate returns the grand budget total for the plan. Only selected
// nodes contribute: a selected vendor adds either the sum over its
// selected tags (UseSum) or its ManualTotal; a selected tag adds either
// the sum of Count*Price over its selected items (UseSum) or its
// ManualTotal.
func Calculate(plan *model.WeddingPlan) float64 {
	if plan == nil {
		return 0
	}

	var total float64
	for _, vendor := range plan.Vendors {
		if !vendor.Selected {
			continue
		}
		if !vendor.UseSum {
			total += vendor.ManualTotal
			continue
		}
		for _, tag := range vendor.Tags {
			if !tag.Selected {
				continue
			}
			if !tag.UseSum {
				total += tag.ManualTotal
				continue
			}
			for _, item := range tag.Items {
				if item.Selected {
					total += item.Count * item.Price
				}
			}
		}
	}
	return total
}

// Breakdown classifies a flat list of items into cost and payment buckets.
// The sign of the Count*Price product decides the bucket: a non-negative
// product is a cost, a negative product is a payment already made (its
// absolute value accrues to Paid). The sign of Price alone is not enough;
// a negative count times a negative price is a cost.
func Breakdown(items []model.Item) Summary {
	var s Summary
	for _, item := range items {
		t := item.Count * item.Price
		if t >= 0 {
			s.Total += t
		} else {
			s.Paid += -t
		}
	}
	s.Remaining = s.Total - s.Paid
	return s
}

// SelectedItems flattens the plan to the leaf items that currently count
// toward the budget, applying the same selection and UseSum gating as
// Calculate. Feed the result to Breakdown.
func SelectedItems(plan *model.WeddingPlan) []model.Item {
	if plan == nil {
		return nil
	}

	var items []model.Item
	for _, vendor := range plan.Vendors {
		if !vendor.Selected || !vendor.UseSum {
			continue
		}
		for _, tag := range vendor.Tags {
			if !tag.Selected || !tag.UseSum {
				continue
			}
			for _, item := range tag.Items {
				if item.Selected {
					items = append(items, item)
				}
			}
		}
	}
	return items
}

// VendorTotal returns the display total for one vendor regardless of the
// vendor's own selection: the selected-tag sum when UseSum is set, the
// manual total otherwise.
func VendorTotal(v model.Vendor) float64 {
	if !v.UseSum {
		return v.ManualTotal
	}
	var total float64
	for _, tag := range v.Tags {
		if tag.Selected {
			total += TagTotal(tag)
		}
	}
	return total
}

// TagTotal returns the display total for one tag: the selected-item sum
// when UseSum is set, the manual total otherwise.
func TagTotal(t model.Tag) float64 {
	if !t.UseSum {
		return t.ManualTotal
	}
	var total float64
	for _, item := range t.Items {
		if item.Selected {
			total += item.Count * item.Price
		}
	}
	return total
}
