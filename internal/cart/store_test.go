package cart

import (
	"math/rand"
	"testing"

	"lab-booking/internal/data/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func newPackage(id, price string, original string) entity.Package {
	p := entity.Package{
		ID:       id,
		Name:     "Package " + id,
		Price:    decimal.RequireFromString(price),
		IsActive: true,
	}
	if original != "" {
		op := decimal.RequireFromString(original)
		p.OriginalPrice = &op
	}
	return p
}

type StoreTestSuite struct {
	suite.Suite
	store *Store
	p1    entity.Package
	p2    entity.Package
}

func (suite *StoreTestSuite) SetupTest() {
	suite.store = NewStore()
	suite.p1 = newPackage("P1", "899", "1299")
	suite.p2 = newPackage("P2", "2499", "")
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) TestTotalsScenario() {
	suite.store.Add(suite.p1, 2)
	suite.store.Add(suite.p2, 1)

	assert.Equal(suite.T(), 3, suite.store.ItemCount())
	assert.Equal(suite.T(), "4297", suite.store.Total().String())
	assert.Equal(suite.T(), "5097", suite.store.OriginalTotal().String())
	assert.Equal(suite.T(), "800", suite.store.Savings().String())

	// reading twice without mutating gives the same answer
	assert.True(suite.T(), suite.store.Total().Equal(suite.store.Total()))
	assert.True(suite.T(), suite.store.Savings().Equal(suite.store.Savings()))
}

func (suite *StoreTestSuite) TestAddMergesExistingItem() {
	suite.store.Add(suite.p1, 3)
	suite.store.Add(suite.p1, 4)

	assert.Len(suite.T(), suite.store.Items(), 1)
	assert.Equal(suite.T(), 7, suite.store.QuantityOf("P1"))
}

func (suite *StoreTestSuite) TestAddClampsQuantity() {
	suite.store.Add(suite.p1, 8)
	suite.store.Add(suite.p1, 5)
	assert.Equal(suite.T(), 10, suite.store.QuantityOf("P1"))

	suite.store.Add(suite.p2, 0)
	assert.Equal(suite.T(), 1, suite.store.QuantityOf("P2"))

	suite.store.Remove("P2")
	suite.store.Add(suite.p2, 25)
	assert.Equal(suite.T(), 10, suite.store.QuantityOf("P2"))
}

func (suite *StoreTestSuite) TestUpdateQuantityRejectsOutOfRange() {
	suite.store.Add(suite.p1, 2)

	assert.False(suite.T(), suite.store.UpdateQuantity("P1", 11))
	assert.Equal(suite.T(), 2, suite.store.QuantityOf("P1"))

	assert.False(suite.T(), suite.store.UpdateQuantity("P1", 0))
	assert.Equal(suite.T(), 2, suite.store.QuantityOf("P1"))

	assert.True(suite.T(), suite.store.UpdateQuantity("P1", 5))
	assert.Equal(suite.T(), 5, suite.store.QuantityOf("P1"))
}

func (suite *StoreTestSuite) TestUnknownIDsAreNoOps() {
	suite.store.Add(suite.p1, 1)

	assert.False(suite.T(), suite.store.UpdateQuantity("nope", 3))
	suite.store.Remove("nope")

	assert.Len(suite.T(), suite.store.Items(), 1)
	assert.False(suite.T(), suite.store.IsInCart("nope"))
	assert.Equal(suite.T(), 0, suite.store.QuantityOf("nope"))
}

func (suite *StoreTestSuite) TestRemoveAndClear() {
	suite.store.Add(suite.p1, 1)
	suite.store.Add(suite.p2, 1)

	suite.store.Remove("P1")
	assert.False(suite.T(), suite.store.IsInCart("P1"))
	assert.True(suite.T(), suite.store.IsInCart("P2"))

	suite.store.Clear()
	assert.True(suite.T(), suite.store.IsEmpty())
	assert.Equal(suite.T(), 0, suite.store.ItemCount())
	assert.True(suite.T(), suite.store.Total().IsZero())
}

func (suite *StoreTestSuite) TestInsertionOrderKept() {
	suite.store.Add(suite.p2, 1)
	suite.store.Add(suite.p1, 1)
	suite.store.Add(suite.p2, 1)

	items := suite.store.Items()
	assert.Equal(suite.T(), "P2", items[0].Package.ID)
	assert.Equal(suite.T(), "P1", items[1].Package.ID)
}

func (suite *StoreTestSuite) TestSavingsNeverNegative() {
	// original below price is treated as no reference price
	suite.store.Add(newPackage("P3", "1000", "500"), 2)

	assert.True(suite.T(), suite.store.Savings().IsZero())
	assert.Equal(suite.T(), "2000", suite.store.OriginalTotal().String())
}

func (suite *StoreTestSuite) TestItemsReturnsCopy() {
	suite.store.Add(suite.p1, 1)

	items := suite.store.Items()
	items[0].Quantity = 9

	assert.Equal(suite.T(), 1, suite.store.QuantityOf("P1"))
}

func (suite *StoreTestSuite) TestRandomOperationsKeepInvariants() {
	packages := []entity.Package{
		suite.p1,
		suite.p2,
		newPackage("P3", "450", "600"),
		newPackage("P4", "1200", ""),
	}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		p := packages[rng.Intn(len(packages))]
		switch rng.Intn(3) {
		case 0:
			suite.store.Add(p, rng.Intn(14)-2)
		case 1:
			suite.store.UpdateQuantity(p.ID, rng.Intn(14)-2)
		case 2:
			suite.store.Remove(p.ID)
		}

		seen := make(map[string]bool)
		total := decimal.Zero
		count := 0
		for _, item := range suite.store.Items() {
			suite.Require().False(seen[item.Package.ID], "duplicate item %s", item.Package.ID)
			seen[item.Package.ID] = true
			suite.Require().GreaterOrEqual(item.Quantity, MinQuantity)
			suite.Require().LessOrEqual(item.Quantity, MaxQuantity)
			total = total.Add(item.Package.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			count += item.Quantity
		}
		suite.Require().True(total.Equal(suite.store.Total()))
		suite.Require().Equal(count, suite.store.ItemCount())
		suite.Require().True(suite.store.Savings().Equal(suite.store.OriginalTotal().Sub(suite.store.Total())))
	}
}

func (suite *StoreTestSuite) TestSummary() {
	suite.store.Add(suite.p1, 2)

	s := suite.store.Summary()
	assert.Equal(suite.T(), 2, s.ItemCount)
	assert.Equal(suite.T(), "1798", s.Total.String())
	assert.Equal(suite.T(), "800", s.Savings.String())
	assert.Len(suite.T(), s.Items, 1)
}
