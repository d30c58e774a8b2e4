package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCash   PaymentMethod = "cash"
	PaymentMBWay  PaymentMethod = "mbway"
	PaymentPayPal PaymentMethod = "paypal"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch pm := PaymentMethod(s); pm {
	case PaymentCard, PaymentCash, PaymentMBWay, PaymentPayPal:
		return pm, nil
	}

	return "", fmt.Errorf("payment method[%s] is not valid", s)
}

type OrderLine struct {
	ProductName string
	// Description is the kitchen ticket text, product name plus customization.
	Description string
	Quantity    int
	UnitPrice   Money
}

type OrderRequest struct {
	CustomerID      string
	Total           Money
	Lines           []OrderLine
	DeliveryAddress string
	Phone           string
	PaymentMethod   PaymentMethod
}

type Order struct {
	ID              uuid.UUID
	CustomerID      string
	Total           Money
	Lines           []OrderLine
	DeliveryAddress string
	Phone           string
	PaymentMethod   PaymentMethod
	PointsEarned    int64

	CreatedAt time.Time
}

// LoyaltyPoints awards one point per whole currency unit of the total.
func LoyaltyPoints(total Money) int64 {
	if !total.Amount.IsPositive() {
		return 0
	}

	return total.Amount.Floor().IntPart()
}
