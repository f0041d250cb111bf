// internal/services/category_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

func newCategoryFixture(t *testing.T) (*CategoryService, *gorm.DB, permissions.Actor) {
	t.Helper()
	db := newTestDB(t)
	actor := newTestActor(t, db, "admin", true)
	return NewCategoryService(db), db, actor
}

func createCategory(t *testing.T, svc *CategoryService, actor permissions.Actor, name, parent string) *models.Category {
	t.Helper()
	cat, err := svc.Create(actor, &CreateCategoryRequest{
		Name:     name,
		IsActive: boolPtr(true),
		Parent:   parent,
	})
	require.NoError(t, err)
	return cat
}

func loadTree(t *testing.T, db *gorm.DB, treeID int) []models.Category {
	t.Helper()
	var nodes []models.Category
	require.NoError(t, db.Where("tree_id = ?", treeID).Order("lft").Find(&nodes).Error)
	return nodes
}

// assertValidTree checks the nested-set invariant for one tree: bounds are
// the distinct integers 1..2n, every node has lft < rgt, and the root spans
// the whole range.
func assertValidTree(t *testing.T, db *gorm.DB, treeID int) {
	t.Helper()
	nodes := loadTree(t, db, treeID)
	require.NotEmpty(t, nodes)

	seen := make(map[int]bool, 2*len(nodes))
	for _, n := range nodes {
		assert.Less(t, n.Lft, n.Rgt, "node %s", n.Slug)
		assert.False(t, seen[n.Lft], "duplicate bound %d", n.Lft)
		assert.False(t, seen[n.Rgt], "duplicate bound %d", n.Rgt)
		seen[n.Lft] = true
		seen[n.Rgt] = true
	}
	for i := 1; i <= 2*len(nodes); i++ {
		assert.True(t, seen[i], "missing bound %d", i)
	}

	assert.Equal(t, 1, nodes[0].Lft)
	assert.Equal(t, 2*len(nodes), nodes[0].Rgt)
	assert.Equal(t, 1, nodes[0].Depth)
}

func TestCreateRootCategories(t *testing.T) {
	svc, db, actor := newCategoryFixture(t)

	first := createCategory(t, svc, actor, "Clothing", "")
	second := createCategory(t, svc, actor, "Footwear", "")

	assert.Equal(t, 1, first.Lft)
	assert.Equal(t, 2, first.Rgt)
	assert.Equal(t, 1, first.Depth)
	assert.Equal(t, 1, first.TreeID)
	assert.True(t, first.IsRoot())

	// A new root opens its own tree.
	assert.Equal(t, 2, second.TreeID)
	assert.Equal(t, 1, second.Lft)

	assertValidTree(t, db, 1)
	assertValidTree(t, db, 2)
}

func TestSlugGeneratedFromName(t *testing.T) {
	svc, _, actor := newCategoryFixture(t)

	cat := createCategory(t, svc, actor, "Summer Shoes", "")
	assert.Equal(t, "summer-shoes", cat.Slug)
}

func TestDuplicateSlugRejected(t *testing.T) {
	svc, _, actor := newCategoryFixture(t)

	createCategory(t, svc, actor, "Shoes", "")
	_, err := svc.Create(actor, &CreateCategoryRequest{Name: "Shoes"})

	var fieldErr *utils.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "slug", fieldErr.Field)
}

func TestParentNotFound(t *testing.T) {
	svc, _, actor := newCategoryFixture(t)

	_, err := svc.Create(actor, &CreateCategoryRequest{Name: "Shoes", Parent: "nope"})

	var fieldErr *utils.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "parent", fieldErr.Field)
}

func TestChildrenSlottedByName(t *testing.T) {
	svc, db, actor := newCategoryFixture(t)

	root := createCategory(t, svc, actor, "Clothing", "")
	createCategory(t, svc, actor, "Shoes", root.Slug)
	createCategory(t, svc, actor, "Accessories", root.Slug)
	createCategory(t, svc, actor, "Trousers", root.Slug)

	nodes := loadTree(t, db, root.TreeID)
	require.Len(t, nodes, 4)

	// Pre-order after the root is the children in name order, regardless
	// of insert order.
	assert.Equal(t, "clothing", nodes[0].Slug)
	assert.Equal(t, "accessories", nodes[1].Slug)
	assert.Equal(t, "shoes", nodes[2].Slug)
	assert.Equal(t, "trousers", nodes[3].Slug)

	for _, child := range nodes[1:] {
		assert.Equal(t, 2, child.Depth)
		assert.True(t, nodes[0].IsAncestorOf(&child))
	}

	assertValidTree(t, db, root.TreeID)
}

func TestAncestorsAndDescendants(t *testing.T) {
	svc, _, actor := newCategoryFixture(t)

	createCategory(t, svc, actor, "Clothing", "")
	createCategory(t, svc, actor, "Shoes", "clothing")
	createCategory(t, svc, actor, "Sneakers", "shoes")

	ancestors, err := svc.Ancestors("sneakers")
	require.NoError(t, err)
	require.Len(t, ancestors, 2)
	assert.Equal(t, "clothing", ancestors[0].Slug)
	assert.Equal(t, "shoes", ancestors[1].Slug)

	descendants, err := svc.Descendants("clothing")
	require.NoError(t, err)
	require.Len(t, descendants, 2)
	assert.Equal(t, "shoes", descendants[0].Slug)
	assert.Equal(t, "sneakers", descendants[1].Slug)
}

func TestUpdateNeverTouchesBounds(t *testing.T) {
	svc, _, actor := newCategoryFixture(t)

	createCategory(t, svc, actor, "Clothing", "")
	createCategory(t, svc, actor, "Accessories", "clothing")
	child := createCategory(t, svc, actor, "Shoes", "clothing")

	name := "Aardvark Shoes"
	updated, err := svc.Update(actor, "shoes", &UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)

	// A rename does not re-slot the node among its siblings.
	assert.Equal(t, child.Lft, updated.Lft)
	assert.Equal(t, child.Rgt, updated.Rgt)
	assert.Equal(t, "shoes", updated.Slug)
}

func TestDestroyDeactivatesInPlace(t *testing.T) {
	svc, db, actor := newCategoryFixture(t)

	root := createCategory(t, svc, actor, "Clothing", "")
	createCategory(t, svc, actor, "Shoes", root.Slug)

	require.NoError(t, svc.Destroy(actor, "shoes"))

	// Retrieval still works, listing does not.
	got, err := svc.GetBySlug("shoes")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	listed, total, err := svc.List(utils.PaginationParams{Page: 1, PageSize: 50})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, "clothing", listed[0].Slug)

	// The tree keeps its shape.
	assertValidTree(t, db, root.TreeID)
}

func TestMoveWithinTree(t *testing.T) {
	svc, db, actor := newCategoryFixture(t)

	root := createCategory(t, svc, actor, "Clothing", "")
	createCategory(t, svc, actor, "Bags", root.Slug)
	createCategory(t, svc, actor, "Shoes", root.Slug)
	createCategory(t, svc, actor, "Sneakers", "shoes")

	// Relocate the shoes subtree under bags.
	moved, err := svc.Move(actor, "shoes", "bags")
	require.NoError(t, err)
	assert.Equal(t, 3, moved.Depth)

	assertValidTree(t, db, root.TreeID)

	bags, err := svc.GetBySlug("bags")
	require.NoError(t, err)
	assert.True(t, bags.IsAncestorOf(moved))

	sneakers, err := svc.GetBySlug("sneakers")
	require.NoError(t, err)
	assert.Equal(t, 4, sneakers.Depth)
	assert.True(t, moved.IsAncestorOf(sneakers))
	assert.True(t, bags.IsAncestorOf(sneakers))
}

func TestMoveAcrossTrees(t *testing.T) {
	svc, db, actor := newCategoryFixture(t)

	createCategory(t, svc, actor, "Clothing", "")
	createCategory(t, svc, actor, "Shoes", "clothing")
	createCategory(t, svc, actor, "Sneakers", "shoes")
	other := createCategory(t, svc, actor, "Outlet", "")

	moved, err := svc.Move(actor, "shoes", "outlet")
	require.NoError(t, err)
	assert.Equal(t, other.TreeID, moved.TreeID)
	assert.Equal(t, 2, moved.Depth)

	// The subtree follows its root into the new tree.
	sneakers, err := svc.GetBySlug("sneakers")
	require.NoError(t, err)
	assert.Equal(t, other.TreeID, sneakers.TreeID)
	assert.Equal(t, 3, sneakers.Depth)

	assertValidTree(t, db, 1)
	assertValidTree(t, db, other.TreeID)
}

func TestMoveSlotsAmongNewSiblingsByName(t *testing.T) {
	svc, db, actor := newCategoryFixture(t)

	root := createCategory(t, svc, actor, "Clothing", "")
	createCategory(t, svc, actor, "Bags", root.Slug)
	createCategory(t, svc, actor, "Accessories", "bags")
	createCategory(t, svc, actor, "Wallets", "bags")
	createCategory(t, svc, actor, "Belts", root.Slug)

	_, err := svc.Move(actor, "belts", "bags")
	require.NoError(t, err)

	bags, err := svc.GetBySlug("bags")
	require.NoError(t, err)
	children, err := svc.Descendants("bags")
	require.NoError(t, err)

	var names []string
	for _, c := range children {
		if c.Depth == bags.Depth+1 {
			names = append(names, c.Name)
		}
	}
	assert.Equal(t, []string{"Accessories", "Belts", "Wallets"}, names)

	assertValidTree(t, db, root.TreeID)
}

func TestMoveUnderSelfOrDescendantRejected(t *testing.T) {
	svc, _, actor := newCategoryFixture(t)

	createCategory(t, svc, actor, "Clothing", "")
	createCategory(t, svc, actor, "Shoes", "clothing")
	createCategory(t, svc, actor, "Sneakers", "shoes")

	var fieldErr *utils.FieldError

	_, err := svc.Move(actor, "shoes", "shoes")
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "parent", fieldErr.Field)

	_, err = svc.Move(actor, "shoes", "sneakers")
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "parent", fieldErr.Field)
}
