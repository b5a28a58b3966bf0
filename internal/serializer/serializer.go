// Package serializer turns an entity graph into a plain JSON-ready tree.
//
// Every entity exposes its scalar columns, its relations and a default set of
// exclusion paths. A call may layer extra paths on top of those defaults for
// one response shape. A path of length one drops the named relation where it
// is applied; a longer path is handed down to the related entity with its
// head removed, where it is merged with that entity's own defaults.
package serializer

import "strings"

// Field names a relation of an entity.
type Field string

const (
	FieldProduct Field = "product"
	FieldBuyer   Field = "buyer"
	FieldReviews Field = "reviews"
)

// Path is a directional exclusion path, read from the entity it is applied to.
type Path []Field

// Exclude builds a Path: Exclude(FieldReviews, FieldProduct) drops the
// product of every review reached through the reviews relation.
func Exclude(fields ...Field) Path {
	return Path(fields)
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, f := range p {
		parts[i] = string(f)
	}
	return "-" + strings.Join(parts, ".")
}

// Node is implemented by every serializable entity.
//
// Relations returns, per field, either a Node, a []Node or nil (an absent
// to-one relation).
type Node interface {
	Identity() string
	Attributes() map[string]any
	Relations() map[Field]any
	Rules() []Path
}

// Serialize builds the tree for n using its default rules plus extra.
func Serialize(n Node, extra ...Path) map[string]any {
	return serialize(n, extra, make(map[string]struct{}))
}

// SerializeAll serializes every item with the same extra rules. The result is
// never nil so that an empty list encodes as [].
func SerializeAll[T Node](items []T, extra ...Path) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, Serialize(item, extra...))
	}
	return out
}

func serialize(n Node, inherited []Path, ancestors map[string]struct{}) map[string]any {
	rules := make([]Path, 0, len(n.Rules())+len(inherited))
	rules = append(rules, n.Rules()...)
	rules = append(rules, inherited...)

	out := make(map[string]any)
	for k, v := range n.Attributes() {
		out[k] = v
	}

	id := n.Identity()
	ancestors[id] = struct{}{}
	defer delete(ancestors, id)

	for field, rel := range n.Relations() {
		if dropped(rules, field) {
			continue
		}
		child := descend(rules, field)

		switch v := rel.(type) {
		case nil:
			out[string(field)] = nil
		case Node:
			// A relation leading back to an entity on the current path
			// would never terminate.
			if _, seen := ancestors[v.Identity()]; seen {
				continue
			}
			out[string(field)] = serialize(v, child, ancestors)
		case []Node:
			list := make([]map[string]any, 0, len(v))
			for _, item := range v {
				if _, seen := ancestors[item.Identity()]; seen {
					continue
				}
				list = append(list, serialize(item, child, ancestors))
			}
			out[string(field)] = list
		}
	}

	return out
}

func dropped(rules []Path, field Field) bool {
	for _, p := range rules {
		if len(p) == 1 && p[0] == field {
			return true
		}
	}
	return false
}

func descend(rules []Path, field Field) []Path {
	var child []Path
	for _, p := range rules {
		if len(p) > 1 && p[0] == field {
			child = append(child, p[1:])
		}
	}
	return child
}
