package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ritualnet/backend/internal/domain"
)

func intPtr(v int) *int { return &v }

func createTestUser(silver, gold int) *domain.User {
	return &domain.User{
		ID:           1,
		Username:     "testuser",
		SilverAmount: silver,
		GoldAmount:   gold,
	}
}

func createGeneralItem(id int64, name string, silverCost int) *domain.Item {
	return &domain.Item{
		ID:                 id,
		Name:               name,
		SilverCost:         intPtr(silverCost),
		IsGeneralStoreItem: true,
	}
}

func createPremiumItem(id int64, name string, goldCost *int) *domain.Item {
	return &domain.Item{
		ID:       id,
		Name:     name,
		GoldCost: goldCost,
	}
}

func createUserItem(userID, itemID int64) *domain.UserItem {
	return &domain.UserItem{ID: 100, UserID: userID, ItemID: itemID, ItemLevel: domain.DefaultItemLevel}
}

type testMocks struct {
	repo     *MockRepository
	tx       *MockTx
	catalog  *MockCatalog
	schedule *MockSchedule
}

func newTestService() (Service, *testMocks) {
	m := &testMocks{
		repo:     new(MockRepository),
		tx:       new(MockTx),
		catalog:  new(MockCatalog),
		schedule: new(MockSchedule),
	}
	return NewService(m.repo, m.catalog, m.schedule), m
}

func TestBuyGeneralItem_Success(t *testing.T) {
	svc, m := newTestService()
	item := createGeneralItem(7, "rusted_blade", 100)

	m.catalog.On("GetItem", mock.Anything, int64(7)).Return(item, nil)
	m.repo.On("BeginTx", mock.Anything).Return(m.tx, nil)
	m.tx.On("GetUserForUpdate", mock.Anything, int64(1)).Return(createTestUser(250, 0), nil)
	m.tx.On("GetUserItem", mock.Anything, int64(1), int64(7)).Return(nil, nil)
	m.tx.On("DebitBalance", mock.Anything, int64(1), domain.CurrencySilver, 100).Return(nil)
	m.tx.On("InsertUserItem", mock.Anything, int64(1), int64(7)).Return(createUserItem(1, 7), nil)
	m.tx.On("Commit", mock.Anything).Return(nil)
	m.tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

	result, err := svc.BuyGeneralItem(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ItemID)
	assert.Equal(t, domain.CurrencySilver, result.Currency)
	assert.Equal(t, 100, result.AmountSpent)
	assert.Equal(t, 150, result.RemainingBalance)
	m.tx.AssertExpectations(t)
}

func TestBuyGeneralItem_NotGeneralStoreItem(t *testing.T) {
	svc, m := newTestService()
	item := createPremiumItem(7, "crown", intPtr(50))

	m.catalog.On("GetItem", mock.Anything, int64(7)).Return(item, nil)

	_, err := svc.BuyGeneralItem(context.Background(), 1, 7)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	m.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestBuyGeneralItem_ItemNotFound(t *testing.T) {
	svc, m := newTestService()

	m.catalog.On("GetItem", mock.Anything, int64(99)).Return(nil, domain.ErrItemNotFound)

	_, err := svc.BuyGeneralItem(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestBuyGeneralItem_NoSilverPrice(t *testing.T) {
	svc, m := newTestService()
	item := &domain.Item{ID: 7, Name: "relic", IsGeneralStoreItem: true}

	m.catalog.On("GetItem", mock.Anything, int64(7)).Return(item, nil)

	_, err := svc.BuyGeneralItem(context.Background(), 1, 7)
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
}

func TestBuyGeneralItem_InsufficientFunds(t *testing.T) {
	svc, m := newTestService()
	item := createGeneralItem(7, "rusted_blade", 100)

	m.catalog.On("GetItem", mock.Anything, int64(7)).Return(item, nil)
	m.repo.On("BeginTx", mock.Anything).Return(m.tx, nil)
	m.tx.On("GetUserForUpdate", mock.Anything, int64(1)).Return(createTestUser(99, 0), nil)
	m.tx.On("GetUserItem", mock.Anything, int64(1), int64(7)).Return(nil, nil)
	m.tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.BuyGeneralItem(context.Background(), 1, 7)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	m.tx.AssertNotCalled(t, "DebitBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBuyGeneralItem_AlreadyOwned(t *testing.T) {
	svc, m := newTestService()
	item := createGeneralItem(7, "rusted_blade", 100)

	m.catalog.On("GetItem", mock.Anything, int64(7)).Return(item, nil)
	m.repo.On("BeginTx", mock.Anything).Return(m.tx, nil)
	m.tx.On("GetUserForUpdate", mock.Anything, int64(1)).Return(createTestUser(250, 0), nil)
	m.tx.On("GetUserItem", mock.Anything, int64(1), int64(7)).Return(createUserItem(1, 7), nil)
	m.tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.BuyGeneralItem(context.Background(), 1, 7)
	assert.ErrorIs(t, err, domain.ErrAlreadyOwned)
	m.tx.AssertNotCalled(t, "DebitBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBuyGeneralItem_UserNotFound(t *testing.T) {
	svc, m := newTestService()
	item := createGeneralItem(7, "rusted_blade", 100)

	m.catalog.On("GetItem", mock.Anything, int64(7)).Return(item, nil)
	m.repo.On("BeginTx", mock.Anything).Return(m.tx, nil)
	m.tx.On("GetUserForUpdate", mock.Anything, int64(1)).Return(nil, nil)
	m.tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.BuyGeneralItem(context.Background(), 1, 7)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBuyGeneralItem_InsertConflict(t *testing.T) {
	svc, m := newTestService()
	item := createGeneralItem(7, "rusted_blade", 100)

	m.catalog.On("GetItem", mock.Anything, int64(7)).Return(item, nil)
	m.repo.On("BeginTx", mock.Anything).Return(m.tx, nil)
	m.tx.On("GetUserForUpdate", mock.Anything, int64(1)).Return(createTestUser(250, 0), nil)
	m.tx.On("GetUserItem", mock.Anything, int64(1), int64(7)).Return(nil, nil)
	m.tx.On("DebitBalance", mock.Anything, int64(1), domain.CurrencySilver, 100).Return(nil)
	m.tx.On("InsertUserItem", mock.Anything, int64(1), int64(7)).Return(nil, domain.ErrAlreadyOwned)
	m.tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.BuyGeneralItem(context.Background(), 1, 7)
	assert.ErrorIs(t, err, domain.ErrPurchaseConflict)
	m.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBuyPremiumItem_Success(t *testing.T) {
	svc, m := newTestService()
	item := createPremiumItem(9, "crown", intPtr(50))

	m.catalog.On("GetItem", mock.Anything, int64(9)).Return(item, nil)
	m.schedule.On("IsItemLive", mock.Anything, int64(9)).Return(true, nil)
	m.repo.On("BeginTx", mock.Anything).Return(m.tx, nil)
	m.tx.On("GetUserForUpdate", mock.Anything, int64(1)).Return(createTestUser(0, 80), nil)
	m.tx.On("GetUserItem", mock.Anything, int64(1), int64(9)).Return(nil, nil)
	m.tx.On("DebitBalance", mock.Anything, int64(1), domain.CurrencyGold, 50).Return(nil)
	m.tx.On("InsertUserItem", mock.Anything, int64(1), int64(9)).Return(createUserItem(1, 9), nil)
	m.tx.On("Commit", mock.Anything).Return(nil)
	m.tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

	result, err := svc.BuyPremiumItem(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyGold, result.Currency)
	assert.Equal(t, 50, result.AmountSpent)
	assert.Equal(t, 30, result.RemainingBalance)
}

func TestBuyPremiumItem_NotLive(t *testing.T) {
	svc, m := newTestService()
	item := createPremiumItem(9, "crown", intPtr(50))

	m.catalog.On("GetItem", mock.Anything, int64(9)).Return(item, nil)
	m.schedule.On("IsItemLive", mock.Anything, int64(9)).Return(false, nil)

	_, err := svc.BuyPremiumItem(context.Background(), 1, 9)
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
	m.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestBuyPremiumItem_LiveButUnpriced(t *testing.T) {
	svc, m := newTestService()
	item := createPremiumItem(9, "crown", nil)

	m.catalog.On("GetItem", mock.Anything, int64(9)).Return(item, nil)
	m.schedule.On("IsItemLive", mock.Anything, int64(9)).Return(true, nil)

	_, err := svc.BuyPremiumItem(context.Background(), 1, 9)
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
	m.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestBuyPremiumItem_ExactBalance(t *testing.T) {
	svc, m := newTestService()
	item := createPremiumItem(9, "crown", intPtr(80))

	m.catalog.On("GetItem", mock.Anything, int64(9)).Return(item, nil)
	m.schedule.On("IsItemLive", mock.Anything, int64(9)).Return(true, nil)
	m.repo.On("BeginTx", mock.Anything).Return(m.tx, nil)
	m.tx.On("GetUserForUpdate", mock.Anything, int64(1)).Return(createTestUser(0, 80), nil)
	m.tx.On("GetUserItem", mock.Anything, int64(1), int64(9)).Return(nil, nil)
	m.tx.On("DebitBalance", mock.Anything, int64(1), domain.CurrencyGold, 80).Return(nil)
	m.tx.On("InsertUserItem", mock.Anything, int64(1), int64(9)).Return(createUserItem(1, 9), nil)
	m.tx.On("Commit", mock.Anything).Return(nil)
	m.tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

	result, err := svc.BuyPremiumItem(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, result.RemainingBalance)
}

func TestListGeneralStoreItems(t *testing.T) {
	svc, m := newTestService()

	m.repo.On("GetUser", mock.Anything, int64(1)).Return(createTestUser(0, 0), nil)
	m.catalog.On("ListGeneralStoreItems", mock.Anything, int64(1)).
		Return([]domain.Item{*createGeneralItem(7, "rusted_blade", 100)}, nil)

	items, err := svc.ListGeneralStoreItems(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestListGeneralStoreItems_UserNotFound(t *testing.T) {
	svc, m := newTestService()

	m.repo.On("GetUser", mock.Anything, int64(1)).Return(nil, nil)

	_, err := svc.ListGeneralStoreItems(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListLivePremiumItems(t *testing.T) {
	svc, m := newTestService()

	m.schedule.On("LiveListings", mock.Anything).Return([]domain.PremiumListing{
		{ItemID: 9, ItemName: "crown", GoldCost: 50},
	}, nil)

	listings, err := svc.ListLivePremiumItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}
