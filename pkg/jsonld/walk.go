package jsonld

// graphKey designates the container whose members stay root-level despite
// syntactic nesting.
const graphKey = "@graph"

// Walk traverses v depth-first in document order and invokes visit at every
// object node, exactly once per node, with the node's structural context.
// Descending through the graph container key restores root context;
// descending through any other object key makes the subtree nested. Array
// elements inherit the context of the array itself, so members of a
// top-level graph remain roots.
//
// Walk never mutates v; accumulation belongs to the visitor's closure.
func Walk(v *Value, root bool, visit func(obj *Value, root bool)) {
	switch v.Kind() {
	case KindObject:
		visit(v, root)
		for _, m := range v.Members() {
			Walk(m.Value, m.Key == graphKey, visit)
		}
	case KindArray:
		for _, item := range v.Items() {
			Walk(item, root, visit)
		}
	}
}
