package models

import (
	"fmt"
	"strings"
)

// ResourceKind identifies one of the tenant-scoped resource collections
type ResourceKind string

const (
	ResourceKindDataQuery   ResourceKind = "data_query"
	ResourceKindLGPDQuery   ResourceKind = "lgpd_query"
	ResourceKindDPOQuery    ResourceKind = "dpo_query"
	ResourceKindLegalQuery  ResourceKind = "legal_query"
	ResourceKindDBManage    ResourceKind = "db_manage"
	ResourceKindDataMigrate ResourceKind = "data_migrate"
	ResourceKindEasyAPI     ResourceKind = "easy_api"
	ResourceKindAppGen      ResourceKind = "app_gen"
)

// AllResourceKinds returns every resource kind in a stable order
func AllResourceKinds() []ResourceKind {
	return []ResourceKind{
		ResourceKindDataQuery,
		ResourceKindLGPDQuery,
		ResourceKindDPOQuery,
		ResourceKindLegalQuery,
		ResourceKindDBManage,
		ResourceKindDataMigrate,
		ResourceKindEasyAPI,
		ResourceKindAppGen,
	}
}

// IsValid checks if the ResourceKind is valid
func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceKindDataQuery, ResourceKindLGPDQuery, ResourceKindDPOQuery, ResourceKindLegalQuery,
		ResourceKindDBManage, ResourceKindDataMigrate, ResourceKindEasyAPI, ResourceKindAppGen:
		return true
	}
	return false
}

// TableName returns the table backing items of this kind
func (k ResourceKind) TableName() string {
	return string(k) + "_items"
}

// TenantIndexName returns the name of the tenant_id index on TableName
func (k ResourceKind) TenantIndexName() string {
	return "idx_" + k.TableName() + "_tenant_id"
}

// Slug returns the route segment for this kind (data_query -> data-query)
func (k ResourceKind) Slug() string {
	return strings.ReplaceAll(string(k), "_", "-")
}

// ParseResourceKind accepts both the kind name and its slug
func ParseResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown resource kind %q", s)
	}
	return k, nil
}

// UserRole is the role of a principal within its tenant
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleUsuario UserRole = "usuario"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUsuario:
		return true
	}
	return false
}
