// Package model defines the domain types for aisle wedding plans.
package model

// Item is a leaf line entry under a tag. Its monetary contribution is
// Count*Price; a negative product records a payment already made toward
// the surrounding cost rather than a cost itself.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Count    float64 `json:"count"`
	Price    float64 `json:"price"`
	Selected bool    `json:"selected"`
}

// Total returns the item's signed monetary contribution.
func (i Item) Total() float64 {
	return i.Count * i.Price
}

// Tag is a cost category under a vendor. When UseSum is set its value is
// the sum of its selected items; otherwise ManualTotal is used directly
// and the items are cosmetic.
type Tag struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Items       []Item  `json:"items"`
	UseSum      bool    `json:"useSum"`
	ManualTotal float64 `json:"manualTotal"`
	Selected    bool    `json:"selected"`
}

// Vendor is a top-level cost-tracking entity containing tags. The
// UseSum/ManualTotal duality mirrors Tag one level up.
type Vendor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Tags        []Tag   `json:"tags"`
	UseSum      bool    `json:"useSum"`
	ManualTotal float64 `json:"manualTotal"`
	Selected    bool    `json:"selected"`
}

// WeddingPlan is the root aggregate for one wedding. ID is the durable
// lookup key; Name+Passcode is the alternate key used at login. The JSON
// shape is the stored document format and must round-trip exactly.
type WeddingPlan struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Passcode  string   `json:"passcode"`
	Vendors   []Vendor `json:"vendors"`
	CreatedAt int64    `json:"createdAt"`
}

// FindVendor returns the vendor with the given id, or nil.
func (p *WeddingPlan) FindVendor(vendorID string) *Vendor {
	for i := range p.Vendors {
		if p.Vendors[i].ID == vendorID {
			return &p.Vendors[i]
		}
	}
	return nil
}

// FindTag returns the tag with the given id under the vendor, or nil.
func (v *Vendor) FindTag(tagID string) *Tag {
	for i := range v.Tags {
		if v.Tags[i].ID == tagID {
			return &v.Tags[i]
		}
	}
	return nil
}

// FindItem returns the item with the given id under the tag, or nil.
func (t *Tag) FindItem(itemID string) *Item {
	for i := range t.Items {
		if t.Items[i].ID == itemID {
			return &t.Items[i]
		}
	}
	return nil
}
