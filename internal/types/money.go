// Common money value object used across modules. Amounts are integer VND.
package types

type Money struct {
	Amount   int64
	Currency string
}

func VND(amount int64) Money {
	return Money{Amount: amount, Currency: "VND"}
}
