// Package permissions loads the role table used by the RBAC middleware.
// Paths are chi route patterns, e.g. "/v1/bookings/{id}".
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleManager, constant.RoleFrontDesk, constant.RoleHousekeeping}

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Allows reports whether role may call method on path. Unlisted endpoints allow every role.
func (r *PermissionData) Allows(path, method, role string) bool {
	if r.Skip {
		return true
	}

	permission := r.FindPermissions(path, method)
	if permission.Skip || len(permission.Permissions) == 0 {
		return true
	}

	return slices.Contains(permission.Permissions, role)
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	for _, endpoint := range permissions.Endpoints {
		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				log.Warn().Str("path", endpoint.Path).Str("role", role).Msg("Unknown role in permissions")
			}
		}
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
