package models

// QuoteLine is one priced component of a quote.
type QuoteLine struct {
	Kind     string `bson:"kind" json:"kind"` // "package", "addon" or "delivery"
	ID       string `bson:"id" json:"id"`
	Label    string `bson:"label" json:"label"`
	Quantity int    `bson:"quantity" json:"quantity"`
	Amount   int    `bson:"amount" json:"amount"` // line total, whole dollars
}

// PriceQuote is the derived total for the current configuration. It is
// recomputed on every read and never stored, except as a snapshot on a
// confirmed booking.
type PriceQuote struct {
	Lines []QuoteLine `bson:"lines" json:"lines"`
	Total int         `bson:"total" json:"total"`
}
