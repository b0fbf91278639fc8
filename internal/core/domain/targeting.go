package domain

// Targeting restricts where a campaign is placed. A nil field means "any".
type Targeting struct {
	ProvinceID *int64 `json:"province_id,omitempty"`
	CategoryID *int64 `json:"category_id,omitempty"`
}

// Matches reports whether the targeting accepts the request context.
func (t Targeting) Matches(provinceID, categoryID *int64) bool {
	return matchRef(t.ProvinceID, provinceID) && matchRef(t.CategoryID, categoryID)
}

func matchRef(target, requested *int64) bool {
	if target == nil {
		return true
	}
	return requested != nil && *requested == *target
}
