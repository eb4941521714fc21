package eventor

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/clbanning/mxj/v2"
	"golang.org/x/net/html/charset"
)

// AttrPrefix is prepended to XML attribute names in parsed responses.
// mxj keeps its attribute prefix in package state, so it is set to AttrPrefix
// before every parse. Code in the same process calling mxj.SetAttrPrefix
// while a response is being parsed can still change the keys of that response.
const AttrPrefix = "@"

// TextKey holds the character data of an element that also has attributes.
const TextKey = "#text"

// mxjMu guards the mxj package settings for the duration of a parse.
var mxjMu sync.Mutex

// Node is a parsed XML element. Child elements and attributes are folded into
// one map; repeated siblings become []any, leaf text becomes a string and
// empty elements become "". A full response is a Node keyed by its root
// element, e.g. resp["Event"].
type Node map[string]any

func parseXML(body []byte) (Node, error) {
	mxjMu.Lock()
	defer mxjMu.Unlock()

	mxj.SetAttrPrefix(AttrPrefix)
	mxj.XmlCharsetReader = charset.NewReaderLabel

	m, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, err
	}
	return Node(m), nil
}

// Mxj returns the node as an mxj.Map, for callers who want mxj's path
// queries or re-encoding helpers.
func (n Node) Mxj() mxj.Map {
	return mxj.Map(n)
}

// Path walks a dot separated path such as "Event.Name". Numeric segments
// index into repeated elements: "ResultList.0.Event".
func (n Node) Path(path string) (any, error) {
	var cur any = map[string]any(n)
	for _, seg := range strings.Split(path, ".") {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
			cur = v[i]
		default:
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}
	return cur, nil
}

// Text returns the character data at path. Elements carrying attributes
// yield their #text entry.
func (n Node) Text(path string) (string, error) {
	v, err := n.Path(path)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case map[string]any:
		if s, ok := t[TextKey].(string); ok {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %s is not a text element", ErrUnexpectedShape, path)
}

// List returns the item elements inside the wrapper element, e.g.
// resp.List("EventList", "Event"). A single item yields a one element slice;
// a missing wrapper or item yields a *ShapeError.
func (n Node) List(wrapper, item string) ([]Node, error) {
	return unwrapList(n, wrapper, item)
}

// unwrapList projects resp[wrapper][item] to a slice. A single element is
// returned as a one element slice.
func unwrapList(resp Node, wrapper, item string) ([]Node, error) {
	outer, ok := resp[wrapper].(map[string]any)
	if !ok {
		return nil, &ShapeError{Wrapper: wrapper, Item: item}
	}

	switch v := outer[item].(type) {
	case map[string]any:
		return []Node{Node(v)}, nil
	case []any:
		nodes := make([]Node, 0, len(v))
		for _, e := range v {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, &ShapeError{Wrapper: wrapper, Item: item}
			}
			nodes = append(nodes, Node(m))
		}
		return nodes, nil
	default:
		return nil, &ShapeError{Wrapper: wrapper, Item: item}
	}
}

// unwrapListOptional is unwrapList with an empty result in place of a
// ShapeError.
func unwrapListOptional(resp Node, wrapper, item string) []Node {
	nodes, err := unwrapList(resp, wrapper, item)
	if err != nil {
		return []Node{}
	}
	return nodes
}
