package qss

import "testing"

func TestParseSelectorPlain(t *testing.T) {
	sel, err := ParseSelector("QWidget#NavPaneTree")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Type != "QWidget" || sel.ID != "NavPaneTree" || sel.State != Default {
		t.Errorf("unexpected selector: %+v", sel)
	}
}

func TestParseSelectorStates(t *testing.T) {
	cases := map[string]State{
		"QPushButton#PaneButton":               Default,
		"QPushButton#PaneButton:hover":         Hover,
		"QPushButton#PaneButton:checked":       Checked,
		"QPushButton#PaneButton:checked:hover": CheckedHover,
		"QPushButton#PaneButton:hover:checked": CheckedHover,
	}
	for s, want := range cases {
		sel, err := ParseSelector(s)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", s, err)
			continue
		}
		if sel.State != want {
			t.Errorf("expected %q to select state %s, is %s", s, want, sel.State)
		}
	}
}

func TestParseSelectorErrors(t *testing.T) {
	for _, s := range []string{
		"PaneButton",                     // no '#'
		"#PaneButton",                    // missing widget class
		"QPushButton#",                   // missing identifier
		"QPushButton#Pane Button",        // space in identifier
		"QPushButton#PaneButton:pressed", // unsupported state
		"QPushButton#1Pane",              // identifier starts with digit
	} {
		if _, err := ParseSelector(s); err == nil {
			t.Errorf("expected %q to be rejected, isn't", s)
		}
	}
}

func TestSelectorString(t *testing.T) {
	sel := Selector{Type: "QPushButton", ID: "PaneButton", State: CheckedHover}
	if sel.String() != "QPushButton#PaneButton:checked:hover" {
		t.Errorf("unexpected string form %q", sel.String())
	}
}
