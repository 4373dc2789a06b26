package request

type AddCartItemRequest struct {
	PackageID string `json:"package_id" validate:"required,max=64"`
	// Quantity defaults to 1 when omitted; out-of-range values are clamped.
	Quantity int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
