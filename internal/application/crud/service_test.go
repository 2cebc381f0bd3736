package crud_test

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/application/crud"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv(t *testing.T) (*persistence.Database, shared.Actor, shared.Actor, shared.Actor) {
	t.Helper()

	db, err := persistence.NewTestDatabase()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := persistence.NewGormUserRepository(db.DB)

	alice, err := identity.NewUser("alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	bob, err := identity.NewUser("bob@example.com", "password123", "Bob")
	require.NoError(t, err)
	root, err := identity.NewUser("root@example.com", "password123", "Root")
	require.NoError(t, err)
	root.IsSuperuser = true

	ctx := context.Background()
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))
	require.NoError(t, users.Create(ctx, root))

	return db, alice.Actor(), bob.Actor(), root.Actor()
}

func newStoreService(db *persistence.Database) *crud.Service[partner.Store, *partner.Store] {
	return crud.NewService[partner.Store, *partner.Store](persistence.NewStoreRepository(db.DB), nil)
}

func createStore(t *testing.T, svc *crud.Service[partner.Store, *partner.Store], actor shared.Actor, name string) *partner.Store {
	t.Helper()
	store, err := svc.Create(context.Background(), actor, func() (*partner.Store, error) {
		return partner.NewStore(name), nil
	})
	require.NoError(t, err)
	return store
}

func TestServiceCreate(t *testing.T) {
	db, alice, _, _ := newTestEnv(t)
	svc := newStoreService(db)

	t.Run("assigns the actor as owner", func(t *testing.T) {
		store := createStore(t, svc, alice, "Main Street")
		assert.Equal(t, alice.ID, store.OwnerID)
		assert.NotEqual(t, uuid.Nil, store.ID)
		assert.False(t, store.DateCreated.IsZero())
	})

	t.Run("build errors are returned without persisting", func(t *testing.T) {
		_, err := svc.Create(context.Background(), alice, func() (*partner.Store, error) {
			return nil, shared.NewDomainError("INVALID_INPUT", "bad store")
		})
		require.Error(t, err)
	})
}

func TestServiceGet(t *testing.T) {
	db, alice, bob, root := newTestEnv(t)
	svc := newStoreService(db)
	store := createStore(t, svc, alice, "Main Street")

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.Get(context.Background(), alice, store.ID)
		require.NoError(t, err)
		assert.Equal(t, store.ID, got.ID)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := svc.Get(context.Background(), bob, store.ID)
		require.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("superuser bypasses ownership", func(t *testing.T) {
		got, err := svc.Get(context.Background(), root, store.ID)
		require.NoError(t, err)
		assert.Equal(t, store.ID, got.ID)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), alice, uuid.New())
		require.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestServiceList(t *testing.T) {
	db, alice, bob, root := newTestEnv(t)
	svc := newStoreService(db)

	for i := 0; i < 5; i++ {
		createStore(t, svc, alice, "Alice Store")
	}
	createStore(t, svc, bob, "Bob Store")

	ctx := context.Background()

	t.Run("users only see their own rows", func(t *testing.T) {
		stores, count, err := svc.List(ctx, alice, shared.Page{})
		require.NoError(t, err)
		assert.EqualValues(t, 5, count)
		assert.Len(t, stores, 5)
		for _, s := range stores {
			assert.Equal(t, alice.ID, s.OwnerID)
		}
	})

	t.Run("superuser sees everything", func(t *testing.T) {
		_, count, err := svc.List(ctx, root, shared.Page{})
		require.NoError(t, err)
		assert.EqualValues(t, 6, count)
	})

	t.Run("skip and limit window the result, count stays total", func(t *testing.T) {
		stores, count, err := svc.List(ctx, alice, shared.Page{Skip: 2, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 5, count)
		assert.Len(t, stores, 2)
	})

	t.Run("listing order is stable across pages", func(t *testing.T) {
		all, _, err := svc.List(ctx, alice, shared.Page{})
		require.NoError(t, err)
		page, _, err := svc.List(ctx, alice, shared.Page{Skip: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, all[2].ID, page[0].ID)
		assert.Equal(t, all[3].ID, page[1].ID)
	})
}

func TestServiceUpdate(t *testing.T) {
	db, alice, bob, _ := newTestEnv(t)
	svc := newStoreService(db)
	ctx := context.Background()

	t.Run("applies only the mutated fields and refreshes the timestamp", func(t *testing.T) {
		store := createStore(t, svc, alice, "Main Street")
		_, err := svc.Update(ctx, alice, store.ID, func(s *partner.Store) error {
			s.Address = "1 Main St"
			return nil
		})
		require.NoError(t, err)

		before := store.DateUpdated
		time.Sleep(10 * time.Millisecond)

		updated, err := svc.Update(ctx, alice, store.ID, func(s *partner.Store) error {
			s.Name = "Renamed"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "1 Main St", updated.Address)
		assert.True(t, updated.DateUpdated.After(before))
		assert.Equal(t, store.DateCreated.UTC().Truncate(time.Millisecond),
			updated.DateCreated.UTC().Truncate(time.Millisecond))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		store := createStore(t, svc, alice, "Main Street")
		_, err := svc.Update(ctx, bob, store.ID, func(s *partner.Store) error {
			s.Name = "Hijacked"
			return nil
		})
		require.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("mutation errors abort the update", func(t *testing.T) {
		store := createStore(t, svc, alice, "Main Street")
		_, err := svc.Update(ctx, alice, store.ID, func(s *partner.Store) error {
			return shared.NewDomainError("INVALID_INPUT", "nope")
		})
		require.Error(t, err)

		got, err := svc.Get(ctx, alice, store.ID)
		require.NoError(t, err)
		assert.Equal(t, "Main Street", got.Name)
	})
}

func TestServiceDelete(t *testing.T) {
	db, alice, bob, root := newTestEnv(t)
	svc := newStoreService(db)
	ctx := context.Background()

	t.Run("owner delete returns the last state", func(t *testing.T) {
		store := createStore(t, svc, alice, "Main Street")
		deleted, err := svc.Delete(ctx, alice, store.ID)
		require.NoError(t, err)
		assert.Equal(t, store.ID, deleted.ID)

		_, err = svc.Get(ctx, alice, store.ID)
		require.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deleting twice yields not found", func(t *testing.T) {
		store := createStore(t, svc, alice, "Main Street")
		_, err := svc.Delete(ctx, alice, store.ID)
		require.NoError(t, err)
		_, err = svc.Delete(ctx, alice, store.ID)
		require.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("other user is forbidden, superuser is not", func(t *testing.T) {
		store := createStore(t, svc, alice, "Main Street")
		_, err := svc.Delete(ctx, bob, store.ID)
		require.ErrorIs(t, err, shared.ErrForbidden)
		_, err = svc.Delete(ctx, root, store.ID)
		require.NoError(t, err)
	})
}

func TestReferenceChecks(t *testing.T) {
	db, alice, bob, root := newTestEnv(t)
	ctx := context.Background()

	typeRepo := persistence.NewCustomerTypeRepository(db.DB)
	typeSvc := crud.NewService[partner.CustomerType, *partner.CustomerType](typeRepo, nil)

	refCheck := func(ctx context.Context, actor shared.Actor, customer *partner.Customer) error {
		return crud.RequireOwned[partner.CustomerType, *partner.CustomerType](
			ctx, typeRepo, actor, customer.CustomerTypeID, "customer type")
	}
	customerSvc := crud.NewService[partner.Customer, *partner.Customer](
		persistence.NewCustomerRepository(db.DB), refCheck)

	aliceType, err := typeSvc.Create(ctx, alice, func() (*partner.CustomerType, error) {
		return partner.NewCustomerType("Retail"), nil
	})
	require.NoError(t, err)

	t.Run("own reference is accepted", func(t *testing.T) {
		customer, err := customerSvc.Create(ctx, alice, func() (*partner.Customer, error) {
			return partner.NewCustomer("Carol", aliceType.ID), nil
		})
		require.NoError(t, err)
		assert.Equal(t, aliceType.ID, customer.CustomerTypeID)
	})

	t.Run("foreign reference is rejected like a missing one", func(t *testing.T) {
		_, err := customerSvc.Create(ctx, bob, func() (*partner.Customer, error) {
			return partner.NewCustomer("Mallory", aliceType.ID), nil
		})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_REFERENCE", de.Code)

		_, err = customerSvc.Create(ctx, bob, func() (*partner.Customer, error) {
			return partner.NewCustomer("Mallory", uuid.New()), nil
		})
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_REFERENCE", de.Code)
	})

	t.Run("superuser may reference any tenant's row", func(t *testing.T) {
		_, err := customerSvc.Create(ctx, root, func() (*partner.Customer, error) {
			return partner.NewCustomer("Admin Customer", aliceType.ID), nil
		})
		require.NoError(t, err)
	})

	t.Run("update revalidates changed references", func(t *testing.T) {
		customer, err := customerSvc.Create(ctx, alice, func() (*partner.Customer, error) {
			return partner.NewCustomer("Carol", aliceType.ID), nil
		})
		require.NoError(t, err)

		_, err = customerSvc.Update(ctx, alice, customer.ID, func(cu *partner.Customer) error {
			cu.CustomerTypeID = uuid.New()
			return nil
		})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_REFERENCE", de.Code)
	})
}
