package model

// OpportunityCreate creates a pipeline deal. Status defaults to "open".
type OpportunityCreate struct {
	Name            string   `json:"name"`
	ContactID       string   `json:"contactId"`
	PipelineID      string   `json:"pipelineId"`
	PipelineStageID string   `json:"pipelineStageId"`
	Status          string   `json:"status"`
	MonetaryValue   *float64 `json:"monetaryValue"`
}

// Complete reports whether all required fields are present.
func (o OpportunityCreate) Complete() bool {
	return o.Name != "" && o.ContactID != "" && o.PipelineID != "" && o.PipelineStageID != ""
}

// OpportunityUpdate carries partial updates (move stage, change status, ...).
type OpportunityUpdate struct {
	Name            string   `json:"name"`
	PipelineID      string   `json:"pipelineId"`
	PipelineStageID string   `json:"pipelineStageId"`
	Status          string   `json:"status"`
	MonetaryValue   *float64 `json:"monetaryValue"`
}

// Fields returns only the set fields.
func (o OpportunityUpdate) Fields() map[string]any {
	m := map[string]any{}
	if o.Name != "" {
		m["name"] = o.Name
	}
	if o.PipelineID != "" {
		m["pipelineId"] = o.PipelineID
	}
	if o.PipelineStageID != "" {
		m["pipelineStageId"] = o.PipelineStageID
	}
	if o.Status != "" {
		m["status"] = o.Status
	}
	if o.MonetaryValue != nil {
		m["monetaryValue"] = *o.MonetaryValue
	}
	return m
}
