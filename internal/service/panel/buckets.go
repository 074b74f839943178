package panel

import (
	"strings"

	"dispatch/internal/entities"
)

const EmptyBucketMessage = "No orders found"

// BucketNames - секции панели в порядке отображения: All, затем статусы
// в порядке жизненного цикла.
func BucketNames() []string {
	names := make([]string, 0, len(entities.OrderStatuses)+1)
	names = append(names, entities.BucketAll)
	for _, status := range entities.OrderStatuses {
		names = append(names, status.String())
	}
	return names
}

func isKnownBucket(name string) bool {
	for _, known := range BucketNames() {
		if known == name {
			return true
		}
	}
	return false
}

func inBucket(o entities.Order, bucket string) bool {
	return bucket == entities.BucketAll || o.Status.String() == bucket
}

// matchesSearch - регистронезависимый поиск подстроки по имени и id.
func matchesSearch(o entities.Order, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(o.Name), needle) ||
		strings.Contains(strings.ToLower(o.ID), needle)
}

// VisibleOrders возвращает заказы секции bucket, подходящие под search,
// сохраняя исходный порядок.
func VisibleOrders(orders []entities.Order, bucket string, search string) []entities.Order {
	visible := make([]entities.Order, 0)
	for _, o := range orders {
		if inBucket(o, bucket) && matchesSearch(o, search) {
			visible = append(visible, o)
		}
	}
	return visible
}

func buildBuckets(orders []entities.Order, state entities.PanelState, search string) []entities.Bucket {
	names := BucketNames()
	buckets := make([]entities.Bucket, 0, len(names))

	for _, name := range names {
		count := 0
		for _, o := range orders {
			if inBucket(o, name) {
				count++
			}
		}

		visible := VisibleOrders(orders, name, search)
		buckets = append(buckets, entities.Bucket{
			Name:     name,
			Count:    count,
			Expanded: state.Expanded[name],
			Orders:   visible,
			Empty:    len(visible) == 0,
		})
	}

	return buckets
}
