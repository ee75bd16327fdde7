package httpapi

import (
	"time"

	"raffler/domain/entities"
)

type sellerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type raffleResponse struct {
	ID              int64     `json:"id"`
	AmountOfNumbers int       `json:"amount_of_numbers"`
	Price           string    `json:"price"`
	State           string    `json:"state"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

type raffleSummaryResponse struct {
	Raffle      raffleResponse `json:"raffle"`
	NumbersSold int64          `json:"numbers_sold"`
	Revenue     string         `json:"revenue"`
}

type memberResponse struct {
	Seller sellerResponse `json:"seller"`
	Role   string         `json:"role"`
}

type raffleWithRoleResponse struct {
	Raffle raffleResponse `json:"raffle"`
	Role   string         `json:"role"`
}

type roleResponse struct {
	Role *string `json:"role"`
}

type numberResponse struct {
	ID           int64     `json:"id"`
	RaffleID     int64     `json:"raffle_id"`
	SellerID     int64     `json:"seller_id"`
	Number       string    `json:"number"`
	BuyerName    string    `json:"buyer_name"`
	BuyerContact string    `json:"buyer_contact"`
	CreatedAt    time.Time `json:"created_at"`
}

type numberPageResponse struct {
	Results  []numberResponse `json:"results"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	IsDone   bool             `json:"is_done"`
	NextPage *int             `json:"next_page"`
}

type chatMessageResponse struct {
	ID         int64     `json:"id"`
	RaffleID   int64     `json:"raffle_id"`
	SellerID   int64     `json:"seller_id"`
	SellerName string    `json:"seller_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

func toSellerResponse(s *entities.Seller) sellerResponse {
	return sellerResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}
}

func toSellerResponses(sellers []*entities.Seller) []sellerResponse {
	out := make([]sellerResponse, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, toSellerResponse(s))
	}
	return out
}

func toRaffleResponse(r *entities.Raffle) raffleResponse {
	return raffleResponse{
		ID:              r.ID,
		AmountOfNumbers: r.AmountOfNumbers,
		Price:           r.Price.String(),
		State:           string(r.State),
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
	}
}

func toRaffleResponses(raffles []*entities.Raffle) []raffleResponse {
	out := make([]raffleResponse, 0, len(raffles))
	for _, r := range raffles {
		out = append(out, toRaffleResponse(r))
	}
	return out
}

func toNumberResponse(n *entities.Number) numberResponse {
	return numberResponse{
		ID:           n.ID,
		RaffleID:     n.RaffleID,
		SellerID:     n.SellerID,
		Number:       n.Number,
		BuyerName:    n.BuyerName,
		BuyerContact: n.BuyerContact,
		CreatedAt:    n.CreatedAt,
	}
}

func toNumberResponses(numbers []*entities.Number) []numberResponse {
	out := make([]numberResponse, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, toNumberResponse(n))
	}
	return out
}

func toChatMessageResponses(messages []*entities.ChatMessage) []chatMessageResponse {
	out := make([]chatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, chatMessageResponse{
			ID:         m.ID,
			RaffleID:   m.RaffleID,
			SellerID:   m.SellerID,
			SellerName: m.SellerName,
			Message:    m.Message,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out
}
