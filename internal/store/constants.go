package store

// ==================== Error Messages ====================

// Formatted error messages for purchases
const (
	ErrMsgInsufficientFundsFmt = "insufficient funds for %s (cost: %d, balance: %d): %w"
	ErrMsgItemNotPricedFmt     = "item %s has no %s price: %w"
	ErrMsgItemNotInStoreFmt    = "item %s is not sold in the general store: %w"
	ErrMsgItemNotLiveFmt       = "item %s is not currently available: %w"
)

// Database operation error messages
const (
	ErrMsgGetUserFailed           = "failed to get user: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgDebitBalanceFailed      = "failed to debit balance: %w"
	ErrMsgInsertUserItemFailed    = "failed to insert user item: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBuyGeneralItemCalled = "BuyGeneralItem called"
	LogMsgBuyPremiumItemCalled = "BuyPremiumItem called"
	LogMsgItemPurchased        = "Item purchased"
	LogMsgPurchaseConflict     = "Concurrent purchase detected"
)
