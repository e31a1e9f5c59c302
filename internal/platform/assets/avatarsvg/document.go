// Package avatarsvg turns avatar descriptors into self-contained SVG images.
//
// Images are assembled as a small node tree and serialized locally, so the
// same descriptor always produces the same bytes and no network access is
// needed.
package avatarsvg

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Attr is one markup attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is one element in a vector document.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []Node
}

// Element builds a node with attributes given as name/value pairs.
func Element(tag string, pairs ...string) Node {
	node := Node{Tag: tag}
	for i := 0; i+1 < len(pairs); i += 2 {
		node.Attrs = append(node.Attrs, Attr{Name: pairs[i], Value: pairs[i+1]})
	}
	return node
}

// With returns a copy of n with children appended.
func (n Node) With(children ...Node) Node {
	n.Children = append(append([]Node(nil), n.Children...), children...)
	return n
}

// Document is a square SVG canvas.
type Document struct {
	Size     int
	Children []Node
}

// Component exposes the document as a templ component.
func (d Document) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var buf bytes.Buffer
		d.write(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Bytes serializes the document.
func (d Document) Bytes() []byte {
	var buf bytes.Buffer
	d.write(&buf)
	return buf.Bytes()
}

func (d Document) write(buf *bytes.Buffer) {
	size := strconv.Itoa(d.Size)
	root := Element("svg",
		"xmlns", svgNamespace,
		"viewBox", "0 0 "+size+" "+size,
		"width", size,
		"height", size,
	).With(d.Children...)
	writeNode(buf, root)
}

func writeNode(buf *bytes.Buffer, n Node) {
	buf.WriteByte('<')
	buf.WriteString(n.Tag)
	for _, attr := range n.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(attr.Name)
		buf.WriteString(`="`)
		buf.WriteString(templ.EscapeString(attr.Value))
		buf.WriteByte('"')
	}
	if len(n.Children) == 0 && n.Text == "" {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	buf.WriteString(templ.EscapeString(n.Text))
	for _, child := range n.Children {
		writeNode(buf, child)
	}
	buf.WriteString("</")
	buf.WriteString(n.Tag)
	buf.WriteByte('>')
}
