package wrap

// Tuple is one key/value entry of an ordered mapping.
type Tuple[K comparable, V any] struct {
	Key K `json:"key"`
	Val V `json:"val"`
}

// Keys returns the keys of tuples, in order.
func Keys[K comparable, V any](tuples []Tuple[K, V]) []K {
	res := make([]K, 0, len(tuples))
	for _, t := range tuples {
		res = append(res, t.Key)
	}
	return res
}

// Vals returns the values of tuples, in order.
func Vals[K comparable, V any](tuples []Tuple[K, V]) []V {
	res := make([]V, 0, len(tuples))
	for _, t := range tuples {
		res = append(res, t.Val)
	}
	return res
}
