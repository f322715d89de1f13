//go:build integration
// +build integration

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"datawise-backend/internal/database/models"
	"datawise-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ItemRepositoryTestSuite tests the ItemRepository against Postgres
type ItemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ItemRepository
	factories     *testutils.FactorySet
	tenantA       *models.Tenant
	tenantB       *models.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *ItemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewItemRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ItemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ItemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenantA = suite.factories.Tenant.WithID("tenant-abc")
	suite.tenantB = suite.factories.Tenant.WithID("tenant-xyz")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.tenantA).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.tenantB).Error)
}

// TearDownTest runs after each test
func (suite *ItemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ItemRepositoryTestSuite) countRows(kind models.ResourceKind) int64 {
	var n int64
	suite.Require().NoError(suite.baseTestSuite.DB.Table(kind.TableName()).Count(&n).Error)
	return n
}

// TestEveryKindTableHasTenantIndex tests that tenant_id is indexed on each kind table
func (suite *ItemRepositoryTestSuite) TestEveryKindTableHasTenantIndex() {
	for _, kind := range models.AllResourceKinds() {
		var indexNames []string
		err := suite.baseTestSuite.DB.Raw(
			"SELECT indexname FROM pg_indexes WHERE tablename = ? AND indexdef LIKE ?",
			kind.TableName(), "%(tenant_id)%",
		).Scan(&indexNames).Error

		suite.Require().NoError(err)
		suite.Contains(indexNames, kind.TenantIndexName(), "missing tenant index on %s", kind.TableName())
	}
}

// TestTenantIDCannotChange tests that a referenced tenant id cannot be updated
func (suite *ItemRepositoryTestSuite) TestTenantIDCannotChange() {
	item := suite.factories.Item.ForTenant(suite.tenantA.ID)
	suite.Require().NoError(suite.repo.Create(context.Background(), models.ResourceKindDPOQuery, item))

	err := suite.baseTestSuite.DB.Model(&models.Tenant{}).
		Where("id = ?", suite.tenantA.ID).
		Update("id", "tenant-renamed").Error
	suite.ErrorIs(err, gorm.ErrForeignKeyViolated)

	stored, err := suite.repo.GetByID(context.Background(), models.ResourceKindDPOQuery, suite.tenantA.ID, item.ID)
	suite.Require().NoError(err)
	suite.Equal(suite.tenantA.ID, stored.TenantID)
}

// TestCreate tests creating a new item
func (suite *ItemRepositoryTestSuite) TestCreate() {
	item := suite.factories.Item.ForTenant(suite.tenantA.ID)

	err := suite.repo.Create(context.Background(), models.ResourceKindDataQuery, item)

	suite.NoError(err)
	suite.NotEmpty(item.ID)

	stored, err := suite.repo.GetByID(context.Background(), models.ResourceKindDataQuery, suite.tenantA.ID, item.ID)
	suite.Require().NoError(err)
	suite.Equal(item.Name, stored.Name)
	suite.Equal(*item.Data, *stored.Data)
	suite.Equal(suite.tenantA.ID, stored.TenantID)
}

// TestCreateKeepsKindsSeparate tests that each kind has its own table
func (suite *ItemRepositoryTestSuite) TestCreateKeepsKindsSeparate() {
	item := suite.factories.Item.ForTenant(suite.tenantA.ID)
	suite.Require().NoError(suite.repo.Create(context.Background(), models.ResourceKindAppGen, item))

	suite.Equal(int64(1), suite.countRows(models.ResourceKindAppGen))
	suite.Equal(int64(0), suite.countRows(models.ResourceKindEasyAPI))

	_, err := suite.repo.GetByID(context.Background(), models.ResourceKindEasyAPI, suite.tenantA.ID, item.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCreateUnknownTenant tests the foreign key to tenants
func (suite *ItemRepositoryTestSuite) TestCreateUnknownTenant() {
	item := suite.factories.Item.ForTenant("no-such-tenant")

	err := suite.repo.Create(context.Background(), models.ResourceKindLegalQuery, item)

	suite.ErrorIs(err, gorm.ErrForeignKeyViolated)
	suite.Equal(int64(0), suite.countRows(models.ResourceKindLegalQuery))
}

// TestCreateDuplicateID tests that an id collision is reported and nothing is overwritten
func (suite *ItemRepositoryTestSuite) TestCreateDuplicateID() {
	first := suite.factories.Item.ForTenant(suite.tenantA.ID)
	suite.Require().NoError(suite.repo.Create(context.Background(), models.ResourceKindDBManage, first))

	second := suite.factories.Item.ForTenant(suite.tenantB.ID)
	second.ID = first.ID
	second.Name = "intruder"

	err := suite.repo.Create(context.Background(), models.ResourceKindDBManage, second)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)

	stored, err := suite.repo.GetByID(context.Background(), models.ResourceKindDBManage, suite.tenantA.ID, first.ID)
	suite.Require().NoError(err)
	suite.Equal(first.Name, stored.Name)
}

// TestTenantIsolation tests that reads never cross tenants
func (suite *ItemRepositoryTestSuite) TestTenantIsolation() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(context.Background(), models.ResourceKindDataMigrate, suite.factories.Item.ForTenant(suite.tenantA.ID)))
	}
	other := suite.factories.Item.ForTenant(suite.tenantB.ID)
	suite.Require().NoError(suite.repo.Create(context.Background(), models.ResourceKindDataMigrate, other))

	items, total, err := suite.repo.ListByTenant(context.Background(), models.ResourceKindDataMigrate, suite.tenantA.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(items, 3)
	for _, it := range items {
		suite.Equal(suite.tenantA.ID, it.TenantID)
	}

	_, err = suite.repo.GetByID(context.Background(), models.ResourceKindDataMigrate, suite.tenantA.ID, other.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestConcurrentCreates tests that concurrent inserts get distinct ids
func (suite *ItemRepositoryTestSuite) TestConcurrentCreates() {
	const n = 25
	ids := make(chan string, n)
	errs := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := &models.Item{TenantID: suite.tenantA.ID, Name: fmt.Sprintf("item-%d", i)}
			if err := suite.repo.Create(context.Background(), models.ResourceKindDPOQuery, item); err != nil {
				errs <- err
				return
			}
			ids <- item.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		suite.NoError(err)
	}
	seen := map[string]bool{}
	for id := range ids {
		suite.False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	suite.Len(seen, n)
	suite.Equal(int64(n), suite.countRows(models.ResourceKindDPOQuery))
}

// TestItemRepositoryTestSuite runs the test suite
func TestItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryTestSuite))
}
