package entities

type MarkerKind string

const (
	MarkerHub   MarkerKind = "hub"
	MarkerOrder MarkerKind = "order"
)

type MapMarker struct {
	ID       string
	Label    string
	Kind     MarkerKind
	Position Location
	Color    string
	Status   OrderStatusType
}

type MapScene struct {
	Center  Location
	Hub     MapMarker
	Markers []MapMarker
}
