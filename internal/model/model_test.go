package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactRequest_HasIdentity(t *testing.T) {
	assert.False(t, ContactRequest{}.HasIdentity())
	assert.True(t, ContactRequest{Email: "a@b.c"}.HasIdentity())
	assert.True(t, ContactRequest{LastName: "Lovelace"}.HasIdentity())
}

func TestContactRequest_FieldsExcludesUnset(t *testing.T) {
	f := ContactRequest{FirstName: "Ada", Phone: "+15551234567"}.Fields()
	assert.Equal(t, map[string]any{
		"firstName": "Ada",
		"phone":     "+15551234567",
	}, f)
}

func TestOpportunityCreate_Complete(t *testing.T) {
	o := OpportunityCreate{Name: "Deal", ContactID: "c-1", PipelineID: "p-1", PipelineStageID: "s-1"}
	assert.True(t, o.Complete())

	o.PipelineStageID = ""
	assert.False(t, o.Complete())
}

func TestOpportunityUpdate_Fields(t *testing.T) {
	v := 1500.0
	f := OpportunityUpdate{Status: "won", MonetaryValue: &v}.Fields()
	assert.Equal(t, map[string]any{
		"status":        "won",
		"monetaryValue": 1500.0,
	}, f)

	assert.Empty(t, OpportunityUpdate{}.Fields())
}
