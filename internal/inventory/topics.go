package inventory

const (
	TopicOrderCreated     = "order.created"
	TopicOrderConfirmed   = "order.confirmed"
	TopicMovementRecorded = "stock.movement.recorded"
)

// Partition key per aggregate, so all events for one order (or one product)
// keep their order.
func PartitionKey(id string) []byte { return []byte(id) }
