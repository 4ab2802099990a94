package models

// ParseRequest carries the manual-entry text blocks pasted by the user.
// Each block is free-form text copied from a portfolio report.
type ParseRequest struct {
	ClientName          string `json:"client_name"`
	TrailingYearData    string `json:"trailing_year_data"`
	YTDData             string `json:"ytd_data"`
	AssetAllocationData string `json:"asset_allocation_data"`
	TotalPortfolioValue string `json:"total_portfolio_value,omitempty"`
}

// OCRParseRequest carries already-produced OCR text for a whole report.
type OCRParseRequest struct {
	Text string `json:"text"`
}

// GenerateRequest asks for a final note from a verified record.
type GenerateRequest struct {
	Record     StructuredRecord `json:"record"`
	TemplateID string           `json:"template_id,omitempty"`
}

// GenerateResponse carries the rendered note text.
type GenerateResponse struct {
	Note string `json:"note"`
}

// SaveTemplateRequest carries active-template content to persist.
type SaveTemplateRequest struct {
	Content string `json:"content"`
}

// SaveQuickTemplateRequest carries a quick template to create or update.
// Key may be empty, in which case the store generates one.
type SaveQuickTemplateRequest struct {
	Key     string `json:"key,omitempty"`
	Name    string `json:"name"`
	Content string `json:"content"`
}
