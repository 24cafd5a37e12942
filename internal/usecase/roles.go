package usecase

import (
	"sort"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/dto/response"
)

// RoleInfo describes a role. Levels are informational: no endpoint compares them.
type RoleInfo struct {
	Label string
	Level int
}

var roleTable = map[entity.UserRole]RoleInfo{
	entity.RoleVisitor:        {Label: "Pengunjung", Level: 1},
	entity.RoleUMKMOwner:      {Label: "Pengelola UMKM", Level: 2},
	entity.RoleUMKMAdmin:      {Label: "Admin UMKM", Level: 3},
	entity.RoleTicketOfficer:  {Label: "Petugas Tiket", Level: 3},
	entity.RoleContentManager: {Label: "Content Manager", Level: 4},
	entity.RoleAreaManager:    {Label: "Pengelola Kawasan", Level: 5},
	entity.RoleTourismOfficer: {Label: "Dinas Pariwisata", Level: 6},
	entity.RoleRegionalAdmin:  {Label: "Administrator Wilayah", Level: 7},
	entity.RoleSuperadmin:     {Label: "Superadmin", Level: 10},
}

// LookupRole reports the table entry for role.
func LookupRole(role entity.UserRole) (RoleInfo, bool) {
	info, ok := roleTable[role]
	return info, ok
}

// RoleLabel returns the display label, or the raw role for unknown values.
func RoleLabel(role entity.UserRole) string {
	if info, ok := roleTable[role]; ok {
		return info.Label
	}
	return string(role)
}

// Roles lists the table ordered by level, then name.
func Roles() []response.RoleResponse {
	out := make([]response.RoleResponse, 0, len(roleTable))
	for role, info := range roleTable {
		out = append(out, response.RoleResponse{Role: role, Label: info.Label, Level: info.Level})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Role < out[j].Role
	})
	return out
}
