package constant

type contextKey string

// AdminUserKey carries the authenticated admin username through request
// context after the admin-gate middleware.
const AdminUserKey contextKey = "admin_user"
