package entities

// BucketAll - секция со всеми заказами независимо от статуса.
const BucketAll = "All"

type Bucket struct {
	Name     string
	Count    int // заказов в секции без учёта поиска
	Expanded bool
	Orders   []Order // видимые заказы с учётом поиска
	Empty    bool
}

// PanelState - состояние панели заказов одной сессии.
type PanelState struct {
	Expanded        map[string]bool
	SelectedOrderID *string
	PendingCancelID *string
}

func DefaultPanelState() PanelState {
	return PanelState{
		Expanded: map[string]bool{
			BucketAll:             true,
			OrderPending.String(): true,
		},
	}
}

type StatusStep struct {
	Name      string
	Completed bool
}

type OrderDetail struct {
	Order    Order
	Headline string
	Steps    []StatusStep
}
