package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
)

func TestClientToDTO_FlattensCreditsToIDs(t *testing.T) {
	client := &domain.Client{
		ID:    7,
		Name:  "Alice Martin",
		Email: "alice@example.com",
		Credits: []*domain.Credit{
			{ID: 11, ClientID: 7},
			{ID: 12, ClientID: 7},
		},
	}

	record := ClientToDTO(client)

	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, "Alice Martin", record.Name)
	assert.Equal(t, "alice@example.com", record.Email)
	assert.Equal(t, []int64{11, 12}, record.CreditIDs)
}

func TestClientToDTO_NilInput(t *testing.T) {
	assert.Nil(t, ClientToDTO(nil))
}

func TestClientToDTO_NoCredits(t *testing.T) {
	record := ClientToDTO(&domain.Client{ID: 1, Name: "Bob", Email: "bob@example.com"})

	assert.Nil(t, record.CreditIDs)
}

func TestClientFromDTO_DropsCreditIDs(t *testing.T) {
	record := &dto.Client{
		ID:        7,
		Name:      "Alice Martin",
		Email:     "alice@example.com",
		CreditIDs: []int64{11, 12},
	}

	client := ClientFromDTO(record)

	assert.Equal(t, int64(7), client.ID)
	assert.Equal(t, "Alice Martin", client.Name)
	assert.Equal(t, "alice@example.com", client.Email)
	assert.Nil(t, client.Credits)
}

func TestClientFromDTO_NilInput(t *testing.T) {
	assert.Nil(t, ClientFromDTO(nil))
}
