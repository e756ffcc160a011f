package rbtree

// Option configures a Tree at construction time.
type Option func(*options)

type options struct {
	name string
}

// WithName names the tree. Named trees report their activity as Prometheus
// metrics labelled tree=name; unnamed trees export nothing.
//
// Example:
//
//	bids := rbtree.NewOrdered[int64](rbtree.WithName("bids"))
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
