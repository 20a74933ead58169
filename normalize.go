package xmlmock

import "github.com/beevik/etree"

// NormalizeChildCount adjusts parent's direct children tagged tag to exactly
// count instances. Excess children are trimmed from the end, keeping the
// first count. Missing children are cloned from the first existing instance.
// With no instance to act as a template, blank elements carrying the tag are
// appended, each holding one generated string value.
func NormalizeChildCount(parent *etree.Element, tag string, count int, gen *Generator) {
	existing := parent.SelectElements(tag)

	switch {
	case len(existing) > count:
		for _, el := range existing[count:] {
			parent.RemoveChild(el)
		}
	case len(existing) < count:
		if len(existing) > 0 {
			for i := len(existing); i < count; i++ {
				cloneTemplate(parent, existing[0])
			}
			return
		}
		for i := 0; i < count; i++ {
			el := parent.CreateElement(tag)
			el.SetText(gen.Value(TypeString))
		}
	}
}

// cloneTemplate appends a copy of tmpl to parent. The copy keeps tmpl's tag
// and attributes plus one level of children with their tag, attributes and
// text; grandchildren are not carried over.
func cloneTemplate(parent, tmpl *etree.Element) {
	clone := parent.CreateElement(tmpl.FullTag())
	for _, a := range tmpl.Attr {
		clone.CreateAttr(a.FullKey(), a.Value)
	}
	for _, child := range tmpl.ChildElements() {
		c := clone.CreateElement(child.FullTag())
		for _, a := range child.Attr {
			c.CreateAttr(a.FullKey(), a.Value)
		}
		if text := child.Text(); text != "" {
			c.SetText(text)
		}
	}
}
