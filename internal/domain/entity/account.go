package entity

// Account represents a core domain entity without infrastructure concerns.
type Account struct {
	ID          int64
	Name        string
	Email       string
	Address     string
	PhoneNumber string
}

// AccountPatch carries a partial update. A nil field keeps the current value.
type AccountPatch struct {
	Name        *string
	Email       *string
	Address     *string
	PhoneNumber *string
}

// Apply overwrites the fields present in the patch.
func (a *Account) Apply(p AccountPatch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Address != nil {
		a.Address = *p.Address
	}
	if p.PhoneNumber != nil {
		a.PhoneNumber = *p.PhoneNumber
	}
}

// Empty reports whether the patch changes nothing.
func (p AccountPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Address == nil && p.PhoneNumber == nil
}
