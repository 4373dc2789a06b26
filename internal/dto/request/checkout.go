package request

// DraftUpdateRequest holds booking field edits keyed by field name,
// e.g. {"phone": "9876543210", "city": "Pune"}.
type DraftUpdateRequest map[string]string
