package grammar

import "strings"

// Render produces the display spelling of a type for metadata consumers.
// References drop their sigils: descriptors describe value types, matching
// how the generated TypeScript bindings present them. Qualified paths keep
// only their final segment.
func (t *Type) Render() string {
	if t == nil {
		return ""
	}
	switch {
	case t.Ref != nil:
		return t.Ref.Target.Render()
	case t.Tuple != nil:
		elems := make([]string, len(t.Tuple.Elems))
		for i, elem := range t.Tuple.Elems {
			elems[i] = elem.Render()
		}
		return "(" + strings.Join(elems, ", ") + ")"
	case t.Array != nil:
		return "[" + t.Array.Elem.Render() + "; " + t.Array.Len + "]"
	case t.Named != nil:
		name := t.Named.Path[len(t.Named.Path)-1]
		if len(t.Named.Generics) == 0 {
			return name
		}
		args := make([]string, len(t.Named.Generics))
		for i, arg := range t.Named.Generics {
			args[i] = arg.Render()
		}
		return name + "<" + strings.Join(args, ", ") + ">"
	default:
		return ""
	}
}
