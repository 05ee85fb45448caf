/*
Package boxdbg implements helpers to debug a box tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package boxdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/flexbox/box"
	"github.com/npillmayer/flexbox/style"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGFlex,
	style.PGDimension,
	style.PGMargins,
	style.PGPadding,
}

// ToGraphViz outputs a diagram for a box tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root box,
// a Writer, and an optional list of style parameter groups.
// The diagram will include all declared styles belonging to one of the
// parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//   - Flex
//   - Dimension
//   - Margins
//   - Padding
func ToGraphViz(root *box.Box, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("boxes").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("boxnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(boxNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(boxEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*box.Box]string, 256)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	B    *box.Box
	Name string
}

func nodes(b *box.Box, w io.Writer, dict map[*box.Box]string, gparams *graphParamsType) error {
	if err := boxNode(b, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range b.ChildBoxes() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{b, dict[b]}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func boxNode(b *box.Box, w io.Writer, dict map[*box.Box]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("box%05d", len(dict)+1)
	dict[b] = name
	if err := gparams.NodeTmpl.Execute(w, &node{b, name}); err != nil {
		return err
	}
	return boxStyles(b, name, w, gparams)
}

func boxStyles(b *box.Box, name string, w io.Writer, gparams *graphParamsType) error {
	pmap := b.Styles()
	var prev *style.PropertyGroup
	for _, s := range gparams.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func shortText(b *box.Box) string {
	s := b.Name()
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, " ", "␣")
	return `"` + s + `"`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const boxNodeTmpl = `{{ if .B.Text }}
{{ .Name }}	[ label={{ shortstring .B }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label="{{ .B.Display.Symbol }} {{ .B.Name }}\n{{ .B.Rect }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const boxEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
