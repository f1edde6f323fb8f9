package admin

// Permission represents an admin permission
type Permission string

const (
	PermManageEvents    Permission = "events.manage"
	PermModerateContent Permission = "content.moderate"
	PermManageGallery   Permission = "gallery.manage"
	PermManagePricing   Permission = "pricing.manage"
	PermManageMarketing Permission = "marketing.manage"
	PermViewInquiries   Permission = "inquiries.view"
	PermViewAnalytics   Permission = "analytics.view"
	PermManageAdmins    Permission = "admins.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermManageEvents, PermModerateContent, PermManageGallery,
		PermManagePricing, PermManageMarketing, PermViewInquiries,
		PermViewAnalytics, PermManageAdmins,
	},
	RoleAdmin: {
		PermManageEvents, PermModerateContent, PermManageGallery,
		PermManagePricing, PermManageMarketing, PermViewInquiries,
		PermViewAnalytics,
	},
	// Staff run events on the day: uploads and moderation only
	RoleStaff: {
		PermManageEvents, PermModerateContent, PermViewAnalytics,
	},
}

// RoleHierarchy defines role levels (higher = more permissions)
var RoleHierarchy = map[Role]int{
	RoleOwner: 100,
	RoleAdmin: 80,
	RoleStaff: 40,
}

// CanManage checks if role1 can manage role2
func CanManage(role1, role2 Role) bool {
	return RoleHierarchy[role1] > RoleHierarchy[role2]
}

// RoleHasPermission checks the static role table
func RoleHasPermission(role Role, perm Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
