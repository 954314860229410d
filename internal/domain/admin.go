package domain

// AdminUser is the authenticated caller of the admin API
type AdminUser struct {
	ID             string
	Email          string
	IsAdmin        bool
	IsCarwashAdmin bool
}

// CanViewBlockers reports whether the user may read blockers
func (u *AdminUser) CanViewBlockers() bool {
	return u != nil && (u.IsAdmin || u.IsCarwashAdmin)
}

// CanManageBlockers reports whether the user may create or delete blockers
func (u *AdminUser) CanManageBlockers() bool {
	return u != nil && u.IsCarwashAdmin
}
