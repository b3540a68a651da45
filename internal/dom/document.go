//go:build js
// +build js

package dom

import (
	"syscall/js"

	"github.com/pkg/errors"
)

var (
	document = &Document{NewFromJS(js.Global().Get("document"))}
)

type Document struct {
	*Element
}

func GetDocument() *Document {
	return document
}

// ElementByID returns an error naming the missing ID instead of a nil Element.
func (d *Document) ElementByID(id string) (*Element, error) {
	elem := NewFromJS(d.elem.Call("getElementById", id))
	if elem == nil {
		return nil, errors.Errorf("page is missing element #%s", id)
	}
	return elem, nil
}
