package inventory

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusConfirmed Status = "CONFIRMED"
	StatusShipped   Status = "SHIPPED"
	StatusCanceled  Status = "CANCELED"
)

var validNext = map[Status]map[Status]bool{
	StatusDraft:     {StatusConfirmed: true, StatusCanceled: true},
	StatusConfirmed: {StatusShipped: true, StatusCanceled: true},
	StatusShipped:   {},
	StatusCanceled:  {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}
