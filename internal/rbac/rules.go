package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"author": {
		"parse:*",
		"quiz:create",
		"quiz:view",
		"quiz:delete_own",
		"quiz:export",
	},
	"admin": {
		"*", // everything
	},
}
