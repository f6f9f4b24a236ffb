package handler

import (
	"time"

	"sagedo/internal/domain/entity"

	"github.com/google/uuid"
)

// View models keep the JSON wire shape stable and make sure credentials and
// tokens never leave the server.

type userView struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	IsAdmin         bool      `json:"isAdmin"`
	TokenBalance    int       `json:"tokenBalance"`
	HasGoldenTicket bool      `json:"hasGoldenTicket"`
	HasWelcomeBonus bool      `json:"hasWelcomeBonus"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		IsAdmin:         user.IsAdmin,
		TokenBalance:    user.TokenBalance,
		HasGoldenTicket: user.HasGoldenTicket,
		HasWelcomeBonus: user.HasWelcomeBonus,
		IsEmailVerified: user.IsEmailVerified,
		CreatedAt:       user.CreatedAt,
	}
}

type serviceView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            int       `json:"price"`
	Category         string    `json:"category"`
	ImageURL         string    `json:"imageUrl"`
	IsGoldenEligible bool      `json:"isGoldenEligible"`
	DeliveryTime     string    `json:"deliveryTime"`
	ClickCount       int       `json:"clickCount"`
}

func toServiceView(svc *entity.Service) serviceView {
	return serviceView{
		ID:               svc.ID,
		Name:             svc.Name,
		Description:      svc.Description,
		Price:            svc.Price,
		Category:         string(svc.Category),
		ImageURL:         svc.ImageURL,
		IsGoldenEligible: svc.IsGoldenEligible,
		DeliveryTime:     svc.DeliveryTime,
		ClickCount:       svc.ClickCount,
	}
}

func toServiceViews(services []*entity.Service) []serviceView {
	views := make([]serviceView, 0, len(services))
	for _, svc := range services {
		views = append(views, toServiceView(svc))
	}

	return views
}

type orderView struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	ServiceName        string     `json:"serviceName"`
	CustomerEmail      string     `json:"customerEmail"`
	CustomerName       string     `json:"customerName"`
	Requirements       string     `json:"requirements"`
	FileURLs           []string   `json:"fileUrls"`
	Status             string     `json:"status"`
	AmountPaid         int        `json:"amountPaid"`
	PaymentStatus      string     `json:"paymentStatus"`
	DeliveryPreference string     `json:"deliveryPreference"`
	DeliveryFileURLs   []string   `json:"deliveryFileUrls"`
	DeliveryNotes      string     `json:"deliveryNotes"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func toOrderView(order *entity.Order) orderView {
	return orderView{
		ID:                 order.ID,
		UserID:             order.UserID,
		ServiceName:        order.ServiceName,
		CustomerEmail:      order.CustomerEmail,
		CustomerName:       order.CustomerName,
		Requirements:       order.Requirements,
		FileURLs:           order.FileURLs,
		Status:             string(order.Status),
		AmountPaid:         order.AmountPaid,
		PaymentStatus:      string(order.PaymentStatus),
		DeliveryPreference: string(order.DeliveryPreference),
		DeliveryFileURLs:   order.DeliveryFileURLs,
		DeliveryNotes:      order.DeliveryNotes,
		DeliveredAt:        order.DeliveredAt,
		CreatedAt:          order.CreatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

type transactionView struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toTransactionViews(transactions []*entity.TokenTransaction) []transactionView {
	views := make([]transactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, transactionView{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return views
}
