package entities

// InstallmentOption is a derived projection of the charge amount; it has no
// lifecycle of its own and is recomputed whenever the amount changes.
type InstallmentOption struct {
	Installments      int     `json:"installments"`
	InstallmentAmount Cents   `json:"installmentAmount"`
	TotalAmount       Cents   `json:"totalAmount"`
	TotalInterest     Cents   `json:"totalInterest"`
	InterestRate      float64 `json:"interestRate"` // percent, e.g. 12.5
}
