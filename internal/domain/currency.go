package domain

// Currency identifies which of a user's two balances a purchase debits.
type Currency string

const (
	CurrencySilver Currency = "silver"
	CurrencyGold   Currency = "gold"
)

// Balance returns the user's balance for the currency.
func (c Currency) Balance(u *User) int {
	if c == CurrencyGold {
		return u.GoldAmount
	}
	return u.SilverAmount
}

// Price returns the item's price in the currency, or nil when the item is
// not sold for it.
func (c Currency) Price(i *Item) *int {
	if c == CurrencyGold {
		return i.GoldCost
	}
	return i.SilverCost
}
