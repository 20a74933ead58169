// Package xmlmock turns a real XML document into a shape-preserving mock
// fixture.
//
// Leaf text values are replaced with generated values of the same inferred
// type (int, float, date or word), and the number of direct children carrying
// a chosen tag can be normalized to an exact count by cloning an existing
// sibling or trimming the excess:
//
//	opts := xmlmock.Options{Input: "in.xml", Output: "out.xml", Node: "item", Count: 5}
//	err := xmlmock.MockFile(opts)
//
// The building blocks ([Infer], [Generator], [NormalizeChildCount], [Mocker])
// are exported for callers that already hold an etree document.
package xmlmock
