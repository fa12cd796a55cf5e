package backend

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// Wire DTOs mirror the store's JSON contract, field names included. The
// store is document-based and omits fields that predate the delivery
// workflow; toDomain applies the documented defaults for those.

type ordersEnvelopeDTO struct {
	Success     bool       `json:"success"`
	TotalOrders int        `json:"totalOrders"`
	TotalAmount float64    `json:"totalAmount"`
	Orders      []orderDTO `json:"orders"`
}

type orderEnvelopeDTO struct {
	Success bool     `json:"success"`
	Order   orderDTO `json:"order"`
}

type orderDTO struct {
	ID             string           `json:"_id"`
	User           userDTO          `json:"userId"`
	DeliveryInfo   *deliveryInfoDTO `json:"deliveryInfo,omitempty"`
	Products       []lineItemDTO    `json:"products"`
	Amount         float64          `json:"amount"`
	DeliveryType   string           `json:"deliveryType"`
	Status         string           `json:"status"`
	PaymentMethod  string           `json:"paymentMethod,omitempty"`
	IsAccepted     bool             `json:"isAccepted,omitempty"`
	DeliveryStatus string           `json:"deliveryStatus,omitempty"`
	OTPVerified    bool             `json:"otpVerified,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

type userDTO struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type deliveryInfoDTO struct {
	FullName   string   `json:"fullName"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type lineItemDTO struct {
	ID       string        `json:"_id"`
	Product  productRefDTO `json:"productId"`
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
	Price    float64       `json:"price"`
}

type productRefDTO struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	DiscountPrice float64 `json:"discountPrice"`
	Image         string  `json:"image"`
}

type updateDeliveryStatusRequestDTO struct {
	DeliveryStatus string `json:"deliveryStatus"`
}

// toDomain maps a wire order to the domain read model, applying the store's
// defaults: missing deliveryStatus reads as pending, missing paymentMethod as
// cash on delivery, missing isAccepted as not accepted.
func (d orderDTO) toDomain() (order.Order, error) {
	status, err := order.ParseDeliveryStatus(d.DeliveryStatus)
	if err != nil {
		return order.Order{}, err
	}

	paymentMethod := d.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = order.DefaultPaymentMethod
	}

	items := make([]order.LineItem, 0, len(d.Products))
	for _, p := range d.Products {
		productID := p.Product.ID
		if productID == "" {
			productID = p.ID
		}
		items = append(items, order.LineItem{
			ProductID: productID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.Price,
		})
	}

	return order.Order{
		ID: d.ID,
		Customer: order.Customer{
			ID:    d.User.ID,
			Name:  d.User.Name,
			Email: d.User.Email,
		},
		DeliveryInfo:   d.DeliveryInfo.toDomain(),
		LineItems:      items,
		Amount:         d.Amount,
		DeliveryType:   order.DeliveryType(d.DeliveryType),
		PaymentStatus:  order.PaymentStatus(d.Status),
		PaymentMethod:  paymentMethod,
		IsAccepted:     d.IsAccepted,
		DeliveryStatus: status,
		OTPVerified:    d.OTPVerified,
		CreatedAt:      d.CreatedAt,
	}, nil
}

func (d *deliveryInfoDTO) toDomain() *order.DeliveryInfo {
	if d == nil {
		return nil
	}

	info := &order.DeliveryInfo{
		FullName:   d.FullName,
		Phone:      d.Phone,
		Address:    d.Address,
		City:       d.City,
		PostalCode: d.PostalCode,
	}
	if d.Latitude != nil && d.Longitude != nil {
		info.Coordinate = &order.GeoPoint{
			Latitude:  *d.Latitude,
			Longitude: *d.Longitude,
		}
	}
	return info
}
