// Package sortable adapts types that know how to order themselves (Equals plus
// LessThan) to the three-way comparators the trees take.
//
// # Usage
//
// Wrap primitives and derive a comparator from their methods:
//
//	tree, err := rbtree.New(sortable.Comparator[sortable.Int]())
//	if err != nil {
//	    return err
//	}
//
//	tree.Insert(sortable.Int(42), rbtree.AlwaysAdd)
//	tree.Insert(sortable.Int(10), rbtree.AlwaysAdd)
//
//	// Elements are returned in sorted order: 10, 42
//	for val := range tree.All() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// Equals and LessThan must agree: exactly one of a.LessThan(b), b.LessThan(a)
// and a.Equals(b) holds for any pair.
package sortable
