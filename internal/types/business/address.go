package business

// Address represents a tax-relevant address. State and Country carry the raw
// strings entered at checkout; they are resolved against the geography
// directory during jurisdiction resolution.
type Address struct {
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}
