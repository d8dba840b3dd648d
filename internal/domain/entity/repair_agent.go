package entity

// RepairAgent datos del técnico que atiende la reparación. Solo datos, sin
// campos derivados.
type RepairAgent struct {
	Name           string
	GeniusID       string
	StoreNumber    string
	SubmittedDate  string
	DiagnosticDate string
}
