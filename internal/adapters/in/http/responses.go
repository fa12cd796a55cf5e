package http

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// apiError is the uniform error payload of the admin API.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type customerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type geoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type deliveryInfoResponse struct {
	FullName   string            `json:"fullName"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	PostalCode string            `json:"postalCode"`
	Coordinate *geoPointResponse `json:"coordinate,omitempty"`
}

type lineItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type orderResponse struct {
	ID             string                `json:"id"`
	Customer       customerResponse      `json:"customer"`
	DeliveryInfo   *deliveryInfoResponse `json:"deliveryInfo,omitempty"`
	LineItems      []lineItemResponse    `json:"lineItems,omitempty"`
	Amount         float64               `json:"amount"`
	DeliveryType   string                `json:"deliveryType"`
	PaymentStatus  string                `json:"paymentStatus"`
	PaymentMethod  string                `json:"paymentMethod"`
	IsAccepted     bool                  `json:"isAccepted"`
	DeliveryStatus string                `json:"deliveryStatus"`
	OTPVerified    bool                  `json:"otpVerified"`
	CreatedAt      time.Time             `json:"createdAt"`
}

type ordersCollectionResponse struct {
	Orders      []orderResponse `json:"orders"`
	TotalOrders int             `json:"totalOrders"`
	TotalAmount float64         `json:"totalAmount"`
	FetchedAt   time.Time       `json:"fetchedAt"`
}

func toOrderResponse(o order.Order) orderResponse {
	response := orderResponse{
		ID: o.ID,
		Customer: customerResponse{
			ID:    o.Customer.ID,
			Name:  o.Customer.Name,
			Email: o.Customer.Email,
		},
		Amount:         o.Amount,
		DeliveryType:   o.DeliveryType.String(),
		PaymentStatus:  o.PaymentStatus.String(),
		PaymentMethod:  o.PaymentMethod,
		IsAccepted:     o.IsAccepted,
		DeliveryStatus: o.DeliveryStatus.String(),
		OTPVerified:    o.OTPVerified,
		CreatedAt:      o.CreatedAt,
	}

	if o.DeliveryInfo != nil {
		info := &deliveryInfoResponse{
			FullName:   o.DeliveryInfo.FullName,
			Phone:      o.DeliveryInfo.Phone,
			Address:    o.DeliveryInfo.Address,
			City:       o.DeliveryInfo.City,
			PostalCode: o.DeliveryInfo.PostalCode,
		}
		if o.DeliveryInfo.Coordinate != nil {
			info.Coordinate = &geoPointResponse{
				Latitude:  o.DeliveryInfo.Coordinate.Latitude,
				Longitude: o.DeliveryInfo.Coordinate.Longitude,
			}
		}
		response.DeliveryInfo = info
	}

	for _, item := range o.LineItems {
		response.LineItems = append(response.LineItems, lineItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return response
}
