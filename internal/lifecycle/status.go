package lifecycle

// Booking statuses
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checked_in"
	BookingCheckedOut = "checked_out"
	BookingCancelled  = "cancelled"
)

// Payment statuses (bookings only)
const (
	PaymentUnpaid        = "unpaid"
	PaymentPartiallyPaid = "partially_paid"
	PaymentPaid          = "paid"
	PaymentRefunded      = "refunded"
)

// Event statuses
const (
	EventPending   = "pending"
	EventConfirmed = "confirmed"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

// Room statuses
const (
	RoomAvailable   = "available"
	RoomMaintenance = "maintenance"
)

// Menu item statuses
const (
	MenuAvailable = "available"
	MenuSoldOut   = "sold_out"
)

// Derived inventory stock levels, never stored
const (
	StockIn  = "in-stock"
	StockLow = "low-stock"
	StockOut = "out-of-stock"
)

// Meta holds the display metadata for a status
type Meta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Transition is a single user action moving an entity to a new status
type Transition struct {
	To     string `json:"to"`
	Action string `json:"action"`
}

var statusMeta = map[string]Meta{
	BookingPending:    {Label: "Pending", Color: "amber", Icon: "clock"},
	BookingConfirmed:  {Label: "Confirmed", Color: "blue", Icon: "check-circle"},
	BookingCheckedIn:  {Label: "Checked-In", Color: "green", Icon: "login"},
	BookingCheckedOut: {Label: "Checked-Out", Color: "gray", Icon: "logout"},
	BookingCancelled:  {Label: "Cancelled", Color: "red", Icon: "x-circle"},
	EventCompleted:    {Label: "Completed", Color: "gray", Icon: "flag"},

	PaymentUnpaid:        {Label: "Unpaid", Color: "red", Icon: "credit-card"},
	PaymentPartiallyPaid: {Label: "Partially Paid", Color: "amber", Icon: "credit-card"},
	PaymentPaid:          {Label: "Paid", Color: "green", Icon: "credit-card"},
	PaymentRefunded:      {Label: "Refunded", Color: "gray", Icon: "rotate-ccw"},

	RoomAvailable:   {Label: "Available", Color: "green", Icon: "check"},
	RoomMaintenance: {Label: "Maintenance", Color: "amber", Icon: "wrench"},
	MenuSoldOut:     {Label: "Sold Out", Color: "red", Icon: "slash"},

	StockIn:  {Label: "In Stock", Color: "green", Icon: "package"},
	StockLow: {Label: "Low Stock", Color: "amber", Icon: "alert-triangle"},
	StockOut: {Label: "Out of Stock", Color: "red", Icon: "package-x"},
}

// bookingTransitions covers the full booking lifecycle. Terminal statuses
// are present with empty sets so every status has a defined entry.
var bookingTransitions = map[string][]Transition{
	BookingPending: {
		{To: BookingConfirmed, Action: "Confirm Booking"},
		{To: BookingCancelled, Action: "Cancel Booking"},
	},
	BookingConfirmed: {
		{To: BookingCheckedIn, Action: "Check-In"},
	},
	BookingCheckedIn: {
		{To: BookingCheckedOut, Action: "Check-Out"},
	},
	BookingCheckedOut: {},
	BookingCancelled:  {},
}

var eventTransitions = map[string][]Transition{
	EventPending: {
		{To: EventConfirmed, Action: "Confirm Event"},
		{To: EventCancelled, Action: "Cancel Event"},
	},
	EventConfirmed: {
		{To: EventCompleted, Action: "Mark Completed"},
	},
	EventCompleted: {},
	EventCancelled: {},
}

var roomTransitions = map[string][]Transition{
	RoomAvailable:   {{To: RoomMaintenance, Action: "Start Maintenance"}},
	RoomMaintenance: {{To: RoomAvailable, Action: "End Maintenance"}},
}

var menuTransitions = map[string][]Transition{
	MenuAvailable: {{To: MenuSoldOut, Action: "Mark Sold Out"}},
	MenuSoldOut:   {{To: MenuAvailable, Action: "Mark Available"}},
}

var transitionsByEntity = map[string]map[string][]Transition{
	"booking": bookingTransitions,
	"event":   eventTransitions,
	"room":    roomTransitions,
	"menu":    menuTransitions,
}

// MetaFor returns the display metadata for a status
func MetaFor(status string) (Meta, bool) {
	m, ok := statusMeta[status]
	return m, ok
}

// Next returns the transitions reachable from the current status by a
// single user action. The second result is false for unknown statuses.
func Next(entity, status string) ([]Transition, bool) {
	table, ok := transitionsByEntity[entity]
	if !ok {
		return nil, false
	}
	next, ok := table[status]
	return next, ok
}

// CanTransition reports whether from -> to is an allowed single-step move
func CanTransition(entity, from, to string) bool {
	next, ok := Next(entity, from)
	if !ok {
		return false
	}
	for _, t := range next {
		if t.To == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions
func IsTerminal(entity, status string) bool {
	next, ok := Next(entity, status)
	return ok && len(next) == 0
}

// CanDelete reports whether an entity may be deleted in its current
// status. Delete is a separate irreversible action, never a status value,
// and is only permitted while the reservation has not started.
func CanDelete(entity, status string) bool {
	switch entity {
	case "booking":
		return status == BookingPending || status == BookingConfirmed
	case "event":
		return status == EventPending || status == EventConfirmed
	default:
		return false
	}
}

// Statuses returns the closed enumeration for an entity type
func Statuses(entity string) []string {
	switch entity {
	case "booking":
		return []string{BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled}
	case "event":
		return []string{EventPending, EventConfirmed, EventCompleted, EventCancelled}
	case "room":
		return []string{RoomAvailable, RoomMaintenance}
	case "menu":
		return []string{MenuAvailable, MenuSoldOut}
	default:
		return nil
	}
}

// StockLevel derives the inventory level from quantity and the minimum
// stock threshold: out-of-stock if quantity <= 0, low-stock if below the
// threshold, in-stock otherwise.
func StockLevel(quantity, minStockLevel int) string {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity < minStockLevel:
		return StockLow
	default:
		return StockIn
	}
}
