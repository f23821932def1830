/*
Package theme ships the stylesheet of the desktop client's navigation
pane: a caption label, a column of toggle buttons, a content panel and a
tree view.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package theme

import (
	_ "embed"

	"github.com/mhofstett/qss"
	"github.com/mhofstett/qss/style/qssom/douceuradapter"
)

// Widget identifiers styled by the navigation-pane stylesheet.
const (
	CaptionLabel = "CaptionLabel" // caption label at the top of the pane
	PaneButton   = "PaneButton"   // section toggle buttons
	ContentPanel = "ContentPanel" // panel framing the pane's content
	NavPaneTree  = "NavPaneTree"  // tree view inside the pane
)

//go:embed navpane.qss
var navpane string

// Source returns the stylesheet text of the navigation-pane theme.
func Source() string {
	return navpane
}

// Load parses the navigation-pane stylesheet and builds the immutable
// rule set for it. Hosts call Load once at theme-load time and resolve
// against the returned rule set for the lifetime of the process.
func Load() (*qss.RuleSet, error) {
	sheet, err := douceuradapter.Parse(navpane)
	if err != nil {
		return nil, err
	}
	return qss.NewRuleSet(sheet)
}
