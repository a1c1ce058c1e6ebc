package presenter

import "github.com/wichananm65/account-service/internal/domain/entity"

// AccountPresenter shapes domain entities for delivery layer responses.
type AccountPresenter struct{}

func NewAccountPresenter() *AccountPresenter {
	return &AccountPresenter{}
}

// AccountResponse is the wire form of an account. Every field is always present.
type AccountResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

func (p *AccountPresenter) ToResponse(account *entity.Account) *AccountResponse {
	if account == nil {
		return nil
	}
	return &AccountResponse{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		Address:     account.Address,
		PhoneNumber: account.PhoneNumber,
	}
}

func (p *AccountPresenter) ToList(accounts []*entity.Account) []*AccountResponse {
	result := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, p.ToResponse(account))
	}
	return result
}
