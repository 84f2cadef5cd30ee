package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// voidTags are rendered without a closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Render serializes a node back to HTML text. It is used for diagnostics,
// not for round-tripping: the output is close to the source markup but not
// guaranteed byte-identical.
func Render(n Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Text:
		b.WriteString(html.EscapeString(v.Data))
	case *Comment:
		b.WriteString("<!--")
		b.WriteString(v.Data)
		b.WriteString("-->")
	case *Fragment:
		for _, c := range v.Children {
			render(b, c)
		}
	case *Element:
		b.WriteByte('<')
		b.WriteString(v.TagName)
		for _, a := range v.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Value))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if voidTags[strings.ToLower(v.TagName)] {
			return
		}
		for _, c := range v.Children {
			render(b, c)
		}
		b.WriteString("</")
		b.WriteString(v.TagName)
		b.WriteByte('>')
	}
}

func (e *Element) String() string  { return Render(e) }
func (f *Fragment) String() string { return Render(f) }
func (t *Text) String() string     { return t.Data }
