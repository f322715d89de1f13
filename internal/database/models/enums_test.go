package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceKind(t *testing.T) {
	kinds := AllResourceKinds()
	require.Len(t, kinds, 8)

	tables := map[string]bool{}
	indexes := map[string]bool{}
	for _, k := range kinds {
		assert.True(t, k.IsValid(), k)
		assert.False(t, tables[k.TableName()], "duplicate table for %s", k)
		assert.False(t, indexes[k.TenantIndexName()], "duplicate tenant index for %s", k)
		tables[k.TableName()] = true
		indexes[k.TenantIndexName()] = true
	}

	assert.Equal(t, "data_query_items", ResourceKindDataQuery.TableName())
	assert.Equal(t, "idx_app_gen_items_tenant_id", ResourceKindAppGen.TenantIndexName())
	assert.Equal(t, "easy-api", ResourceKindEasyAPI.Slug())
	assert.False(t, ResourceKind("reports").IsValid())
}

func TestParseResourceKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ResourceKind
		wantErr bool
	}{
		{"data_query", ResourceKindDataQuery, false},
		{"lgpd-query", ResourceKindLGPDQuery, false},
		{" APP_GEN ", ResourceKindAppGen, false},
		{"", "", true},
		{"unknown", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseResourceKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserRole(t *testing.T) {
	assert.True(t, UserRoleAdmin.IsValid())
	assert.True(t, UserRoleUsuario.IsValid())
	assert.False(t, UserRole("root").IsValid())
}

func TestBeforeCreate(t *testing.T) {
	t.Run("item gets a fresh id", func(t *testing.T) {
		a, b := &Item{}, &Item{}
		require.NoError(t, a.BeforeCreate(nil))
		require.NoError(t, b.BeforeCreate(nil))

		_, err := uuid.Parse(a.ID)
		assert.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("existing id is kept", func(t *testing.T) {
		item := &Item{BaseModel: BaseModel{ID: "fixed"}}
		require.NoError(t, item.BeforeCreate(nil))
		assert.Equal(t, "fixed", item.ID)
	})

	t.Run("tenant gets id and creation time", func(t *testing.T) {
		fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		restore := now
		now = func() time.Time { return fixed }
		defer func() { now = restore }()

		tenant := &Tenant{Name: "ROOT"}
		require.NoError(t, tenant.BeforeCreate(nil))

		assert.NotEmpty(t, tenant.ID)
		require.NotNil(t, tenant.CreatedAt)
		assert.Equal(t, fixed, *tenant.CreatedAt)
	})

	t.Run("user defaults to the regular role", func(t *testing.T) {
		user := &User{Email: "a@b.test"}
		require.NoError(t, user.BeforeCreate(nil))

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, UserRoleUsuario, user.Role)
	})

	t.Run("user keeps an explicit role", func(t *testing.T) {
		user := &User{Role: UserRoleAdmin}
		require.NoError(t, user.BeforeCreate(nil))
		assert.Equal(t, UserRoleAdmin, user.Role)
	})
}

func TestNewUser(t *testing.T) {
	user := NewUser("tenant-abc", "a@b.test", "hash")

	assert.Equal(t, "tenant-abc", user.TenantID)
	assert.Equal(t, "a@b.test", user.Email)
	assert.Equal(t, "hash", user.HashedPassword)
	assert.Equal(t, UserRoleUsuario, user.Role)
	assert.True(t, user.IsActive)
}
