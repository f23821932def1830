/*
Package qssdbg implements helpers to debug a style rule set.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package qssdbg

import (
	"fmt"
	"io"
	"text/template"

	"github.com/mhofstett/qss"
	"github.com/mhofstett/qss/style"
	tp "github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	WidgetTmpl     *template.Template
	StateTmpl      *template.Template
	StateEdgeTmpl  *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGColor,
	style.PGText,
}

var allStates = []qss.State{qss.Default, qss.Hover, qss.Checked, qss.CheckedHover}

// ToGraphViz outputs a diagram for a rule set. The diagram is in GraphViz
// (DOT) format: one node per widget, linked to the property groups of each
// interaction state a rule exists for. Clients provide the rule set, a
// Writer, and an optional list of style parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//   - Margins
//   - Padding
//   - Border
//   - Color
//   - Text
func ToGraphViz(rs *qss.RuleSet, w io.Writer, styleGroups []string) {
	tmpl, err := template.New("ruleset").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.WidgetTmpl = template.Must(template.New("widget").Parse(widgetNodeTmpl))
	gparams.StateTmpl = template.Must(template.New("state").Parse(stateNodeTmpl))
	gparams.StateEdgeTmpl = template.Must(template.New("stateedge").Parse(stateEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	for i, id := range rs.WidgetIDs() {
		widgetNode(rs, id, i, w, &gparams)
	}
	w.Write([]byte("}\n"))
}

type widget struct {
	Name  string
	Label string
}

type stateNode struct {
	Name  string
	Label string
}

func widgetNode(rs *qss.RuleSet, id string, inx int, w io.Writer, gparams *graphParamsType) {
	typ, _ := rs.WidgetType(id)
	wnode := widget{
		Name:  fmt.Sprintf("widget%05d", inx+1),
		Label: typ + "#" + id,
	}
	if err := gparams.WidgetTmpl.Execute(w, wnode); err != nil {
		panic(err)
	}
	for _, state := range allStates {
		pmap := rs.StyleMap(id, state)
		if pmap == nil {
			continue
		}
		snode := stateNode{
			Name:  fmt.Sprintf("%s_s%d", wnode.Name, state),
			Label: state.String(),
		}
		if err := gparams.StateTmpl.Execute(w, snode); err != nil {
			panic(err)
		}
		if err := gparams.StateEdgeTmpl.Execute(w, []any{wnode, snode}); err != nil {
			panic(err)
		}
		stateStyles(snode, pmap, w, gparams)
	}
}

func stateStyles(snode stateNode, pmap *style.PropertyMap, w io.Writer, gparams *graphParamsType) {
	for _, s := range gparams.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			panic(err)
		}
		if err := gparams.PgedgeTmpl.Execute(w, pgedge{snode.Name, pg}); err != nil {
			panic(err)
		}
	}
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

// Tree renders a rule set as an indented text tree: widgets, their styled
// states, and the declared properties. Handy in test logs.
func Tree(rs *qss.RuleSet) string {
	printer := tp.New()
	for _, id := range rs.WidgetIDs() {
		typ, _ := rs.WidgetType(id)
		branch := printer.AddBranch(typ + "#" + id)
		for _, state := range allStates {
			pmap := rs.StyleMap(id, state)
			if pmap == nil {
				continue
			}
			sbranch := branch.AddBranch(state.String())
			for _, groupname := range defaultGroups {
				pg := pmap.Group(groupname)
				if pg == nil {
					continue
				}
				for _, kv := range pg.Properties() {
					sbranch.AddNode(fmt.Sprintf("%s: %s", kv.Key, kv.Value))
				}
			}
		}
	}
	return printer.String()
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const widgetNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const stateNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=grey95 ] ;
`

const stateEdgeTmpl = `{{ (index . 0).Name }} -> {{ (index . 1).Name }} [weight=1] ;
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

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`
