package xmlmock

import (
	"fmt"

	"github.com/beevik/etree"
)

// LoadDocument parses the XML file at path into an element tree.
func LoadDocument(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse %s: document is empty or contains no root element", path)
	}
	return doc, nil
}

// SaveDocument serializes doc to path as UTF-8. A leading XML declaration is
// prepended when the parsed source carried none.
func SaveDocument(doc *etree.Document, path string) error {
	ensureDeclaration(doc)
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func ensureDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	doc.InsertChildAt(0, &etree.ProcInst{Target: "xml", Inst: `version="1.0" encoding="UTF-8"`})
}
