package gcdtab

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/wirepair/gcd/gcdapi"
	"gitlab.com/screener/screenk"
)

// Element is a DOM node of a Tab
type Element struct {
	tab    *Tab
	nodeID int
}

// NodeID chrome assigned to the element
func (e *Element) NodeID() int {
	return e.nodeID
}

// Attribute reads name through DOM.getAttributes, except "value" which is
// read from the live node so it reflects what was typed.
func (e *Element) Attribute(ctx context.Context, name string) (string, bool, error) {
	if strings.EqualFold(name, "value") {
		return e.liveValue()
	}
	attrs, err := e.tab.t.DOM.GetAttributes(e.nodeID)
	if err != nil {
		return "", false, screenk.StaleFromMessage(err)
	}
	v, ok := attributeFrom(attrs, name)
	return v, ok, nil
}

func (e *Element) liveValue() (string, bool, error) {
	script, err := e.tab.scripts.FindString("value.js")
	if err != nil {
		return "", false, errors.Wrap(err, "loading value.js")
	}

	obj, err := e.tab.t.DOM.ResolveNodeWithParams(&gcdapi.DOMResolveNodeParams{NodeId: e.nodeID, ObjectGroup: objectGroup})
	if err != nil {
		return "", false, screenk.StaleFromMessage(err)
	}
	defer e.tab.t.Runtime.ReleaseObject(obj.ObjectId)

	params := &gcdapi.RuntimeCallFunctionOnParams{
		FunctionDeclaration: script,
		ObjectId:            obj.ObjectId,
		Silent:              true,
		ReturnByValue:       true,
		ObjectGroup:         objectGroup,
	}
	r, exp, err := e.tab.t.Runtime.CallFunctionOnWithParams(params)
	if err != nil {
		return "", false, screenk.StaleFromMessage(err)
	}
	if exp != nil {
		return "", false, errors.New("reading value: " + exp.Text)
	}
	if r == nil || r.Value == nil {
		return "", false, nil
	}
	if s, ok := r.Value.(string); ok {
		return s, true, nil
	}
	return fmt.Sprint(r.Value), true, nil
}

// attributeFrom the flat name, value, name, value... list chrome returns
func attributeFrom(attrs []string, name string) (string, bool) {
	name = strings.ToLower(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		if strings.ToLower(attrs[i]) == name {
			return attrs[i+1], true
		}
	}
	return "", false
}
