package model

// StageSequence is the fixed shipment progression shown by order tracking.
var StageSequence = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}

// StageIndex returns the position of s in StageSequence, or -1 for statuses
// outside it such as cancelled.
func StageIndex(s OrderStatus) int {
	for i, st := range StageSequence {
		if st == s {
			return i
		}
	}
	return -1
}

// TrackingStage is one step of the progress indicator.
type TrackingStage struct {
	Status      OrderStatus `json:"status"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Complete    bool        `json:"complete"`
	Current     bool        `json:"current"`
}

// OrderTracking is the public view of an order looked up by number.
type OrderTracking struct {
	Order       Order           `json:"order"`
	Items       []OrderItem     `json:"items"`
	StatusLabel string          `json:"statusLabel"`
	StageIndex  int             `json:"stageIndex"`
	Cancelled   bool            `json:"cancelled"`
	Stages      []TrackingStage `json:"stages"`
}
