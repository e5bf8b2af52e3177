package http

import "time"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TransitionOrderRequest asks to move an order to a target state.
type TransitionOrderRequest struct {
	Target string `json:"target"`
	Actor  string `json:"actor"`
	Note   string `json:"note,omitempty"`
}

// StateOptionResponse is one reachable state with its display label.
type StateOptionResponse struct {
	State string `json:"state"`
	Label string `json:"label"`
}

// ValidNextStatesResponse describes an order's position on its lifecycle graph.
type ValidNextStatesResponse struct {
	OrderID      string                `json:"orderId"`
	Track        string                `json:"track"`
	CurrentState StateOptionResponse   `json:"currentState"`
	IsTerminal   bool                  `json:"isTerminal"`
	NextStates   []StateOptionResponse `json:"nextStates"`
}

// TimelineEntryResponse is one audit record of an order's state history.
type TimelineEntryResponse struct {
	FromState  *string   `json:"fromState"`
	ToState    string    `json:"toState"`
	ToLabel    string    `json:"toLabel"`
	Actor      string    `json:"actor"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// CreateOrderRequest registers a paid order with its items. Amounts travel as
// strings to keep decimal precision across the wire.
type CreateOrderRequest struct {
	ID            string             `json:"id,omitempty"`
	Track         string             `json:"track"`
	TotalAmount   string             `json:"totalAmount"`
	TotalCurrency string             `json:"totalCurrency"`
	Deadline      *time.Time         `json:"deadline,omitempty"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one garment line on a new order.
type OrderItemRequest struct {
	Quantity          int    `json:"quantity"`
	UnitPriceAmount   string `json:"unitPriceAmount"`
	UnitPriceCurrency string `json:"unitPriceCurrency"`
	IsBackupSuit      bool   `json:"isBackupSuit,omitempty"`
}

// CreateOrderResponse returns the identifier of the registered order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AssignTailorsRequest asks for a primary/backup pair for one garment.
type AssignTailorsRequest struct {
	OrderItemID string `json:"orderItemId"`
	ZoneID      string `json:"zoneId,omitempty"`
}

// AssignedTailorResponse is one half of a committed pair with its score breakdown.
type AssignedTailorResponse struct {
	TailorID    string  `json:"tailorId"`
	Name        string  `json:"name"`
	SkillLevel  string  `json:"skillLevel"`
	Total       float64 `json:"total"`
	QCFactor    float64 `json:"qcFactor"`
	LoadFactor  float64 `json:"loadFactor"`
	SkillFactor float64 `json:"skillFactor"`
}

// AssignTailorsResponse reports the committed pair.
type AssignTailorsResponse struct {
	OrderItemID string                 `json:"orderItemId"`
	Primary     AssignedTailorResponse `json:"primary"`
	Backup      AssignedTailorResponse `json:"backup"`
}

// AlreadyAssignedResponse reports the pair an item already carries.
type AlreadyAssignedResponse struct {
	Code            int    `json:"code"`
	Message         string `json:"message"`
	PrimaryTailorID string `json:"primaryTailorId"`
	BackupTailorID  string `json:"backupTailorId"`
}

// InsufficientCapacityResponse reports how short the candidate pool is.
type InsufficientCapacityResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Available int    `json:"available"`
	Required  int    `json:"required"`
}

// CreateTailorRequest onboards a tailor into the pool.
type CreateTailorRequest struct {
	ID                string  `json:"id,omitempty"`
	Name              string  `json:"name"`
	SkillLevel        string  `json:"skillLevel"`
	QCPassRate        float64 `json:"qcPassRate"`
	MaxConcurrentJobs int     `json:"maxConcurrentJobs,omitempty"`
	ZoneID            string  `json:"zoneId,omitempty"`
}

// CreateTailorResponse returns the identifier of the onboarded tailor.
type CreateTailorResponse struct {
	ID string `json:"id"`
}

// TailorResponse is one tailor row in the pool listing.
type TailorResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	SkillLevel        string  `json:"skillLevel"`
	QCPassRate        float64 `json:"qcPassRate"`
	MaxConcurrentJobs int     `json:"maxConcurrentJobs"`
	CurrentJobCount   int     `json:"currentJobCount"`
	ZoneID            string  `json:"zoneId"`
	IsActive          bool    `json:"isActive"`
}

// TailorRecommendationResponse is one ranked candidate with its score breakdown.
type TailorRecommendationResponse struct {
	TailorID          string  `json:"tailorId"`
	Name              string  `json:"name"`
	SkillLevel        string  `json:"skillLevel"`
	QCPassRate        float64 `json:"qcPassRate"`
	CurrentJobCount   int     `json:"currentJobCount"`
	MaxConcurrentJobs int     `json:"maxConcurrentJobs"`
	Total             float64 `json:"total"`
	QCFactor          float64 `json:"qcFactor"`
	LoadFactor        float64 `json:"loadFactor"`
	SkillFactor       float64 `json:"skillFactor"`
}

// QcStationResponse is one QC station row.
type QcStationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ZoneID      string `json:"zoneId"`
	Capacity    int    `json:"capacity"`
	CurrentLoad int    `json:"currentLoad"`
	IsActive    bool   `json:"isActive"`
}

// VanResponse is one delivery van row.
type VanResponse struct {
	ID           string `json:"id"`
	LicensePlate string `json:"licensePlate"`
	DriverName   string `json:"driverName"`
	Capacity     int    `json:"capacity"`
	CurrentLoad  int    `json:"currentLoad"`
	Status       string `json:"status"`
}

// FlightResponse is one charter flight row.
type FlightResponse struct {
	ID                 string    `json:"id"`
	FlightNumber       string    `json:"flightNumber"`
	DepartureAirport   string    `json:"departureAirport"`
	ArrivalAirport     string    `json:"arrivalAirport"`
	ScheduledDeparture time.Time `json:"scheduledDeparture"`
	Capacity           int       `json:"capacity"`
	GarmentsOnBoard    int       `json:"garmentsOnBoard"`
	Status             string    `json:"status"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
