package model

// CampaignTrigger adds a contact to a campaign (fire-and-forget automation).
type CampaignTrigger struct {
	ContactID  string `json:"contactId"`
	CampaignID string `json:"campaignId"`
}

// WorkflowTrigger adds a contact to a workflow.
type WorkflowTrigger struct {
	ContactID  string `json:"contactId"`
	WorkflowID string `json:"workflowId"`
}
