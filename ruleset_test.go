package qss_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mhofstett/qss"
	"github.com/mhofstett/qss/style/qssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustRuleSet(t *testing.T, source string) *qss.RuleSet {
	t.Helper()
	sheet, err := douceuradapter.Parse(source)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %v", err)
	}
	rs, err := qss.NewRuleSet(sheet)
	if err != nil {
		t.Fatalf("cannot build rule set: %v", err)
	}
	return rs
}

func TestResolveFallbackLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qss.resolve")
	defer teardown()
	//
	rs := mustRuleSet(t, `
QWidget#NavPaneTree {
    margin: 0px;
    background-color: rgba(255, 255, 255, 255);
}`)
	// no state variants defined: every state resolves to the default rule
	def, err := rs.Resolve("NavPaneTree", qss.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, state := range []qss.State{qss.Hover, qss.Checked, qss.CheckedHover} {
		paint, err := rs.Resolve("NavPaneTree", state)
		if err != nil {
			t.Fatalf("unexpected error for state %s: %v", state, err)
		}
		if !reflect.DeepEqual(def, paint) {
			t.Errorf("expected state %s to fall back to default paint, doesn't", state)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	rs := mustRuleSet(t, `QLabel#Caption { color: white; }`)
	a, err1 := rs.Resolve("Caption", qss.Hover)
	b, err2 := rs.Resolve("Caption", qss.Hover)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical inputs to resolve identically, don't")
	}
}

func TestResolveUnknownWidget(t *testing.T) {
	rs := mustRuleSet(t, `QLabel#Caption { color: white; }`)
	_, err := rs.Resolve("Foo", qss.Default)
	if err == nil {
		t.Fatal("expected resolution for unknown widget to fail, didn't")
	}
	if !errors.Is(err, qss.ErrUnknownWidget) {
		t.Errorf("expected ErrUnknownWidget, is %v", err)
	}
}

func TestResolvePartialStateRule(t *testing.T) {
	// the hover rule only overrides the text color; everything else
	// comes from the default-state rule
	rs := mustRuleSet(t, `
QPushButton#PaneButton {
    padding-left: 24px;
    color: rgb(50, 77, 121);
}
QPushButton#PaneButton:hover {
    color: white;
}`)
	paint, err := rs.Resolve("PaneButton", qss.Hover)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paint.TextColor.R != 0xff || paint.TextColor.G != 0xff || paint.TextColor.B != 0xff {
		t.Errorf("expected hover text color white, is %v", paint.TextColor)
	}
	if paint.Padding.Left != 24 {
		t.Errorf("expected padding-left 24 from default rule, is %d", paint.Padding.Left)
	}
}

func TestResolveCheckedHoverPrecedence(t *testing.T) {
	// checked:hover has no own rule for color: the checked face wins
	// over the plain hover face
	rs := mustRuleSet(t, `
QPushButton#PaneButton { color: black; }
QPushButton#PaneButton:hover { color: gray; }
QPushButton#PaneButton:checked { color: white; }`)
	paint, err := rs.Resolve("PaneButton", qss.CheckedHover)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checked, err := rs.Resolve("PaneButton", qss.Checked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paint.TextColor != checked.TextColor {
		t.Errorf("expected checked:hover to inherit the checked color, is %v", paint.TextColor)
	}
}

func TestResolveToolkitDefaults(t *testing.T) {
	// a rule setting only a color still resolves to a complete paint
	rs := mustRuleSet(t, `QLabel#Caption { color: white; }`)
	paint, err := rs.Resolve("Caption", qss.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paint.TextAlign != "left" {
		t.Errorf("expected toolkit default text-align left, is %q", paint.TextAlign)
	}
	if paint.Border.Width != 0 || paint.Border.Style != "none" {
		t.Errorf("expected toolkit default border, is %+v", paint.Border)
	}
	if !paint.Background.IsSolid() {
		t.Errorf("expected toolkit default background to be solid transparent, is %#v",
			paint.Background)
	}
}

func TestRuleSetDuplicateRule(t *testing.T) {
	sheet, err := douceuradapter.Parse(`
QLabel#Caption { color: white; }
QLabel#Caption { color: black; }`)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %v", err)
	}
	if _, err := qss.NewRuleSet(sheet); err == nil {
		t.Error("expected duplicate rule to be rejected, isn't")
	}
}

func TestRuleSetConflictingWidgetClass(t *testing.T) {
	sheet, err := douceuradapter.Parse(`
QLabel#Caption { color: white; }
QFrame#Caption:hover { color: black; }`)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %v", err)
	}
	if _, err := qss.NewRuleSet(sheet); err == nil {
		t.Error("expected conflicting widget classes to be rejected, aren't")
	}
}

func TestRuleSetRejectsInvalidGradientRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qss.resolve")
	defer teardown()
	//
	// non-monotonic stops: the hover rule is rejected as a whole and
	// hover falls back to the default face
	rs := mustRuleSet(t, `
QPushButton#PaneButton { background-color: rgb(233, 237, 241); }
QPushButton#PaneButton:hover {
    background-color: qlineargradient(x1: 0, y1: 0, x2: 0, y2: 1,
        stop: 0.8 white, stop: 0.2 black);
}`)
	def, _ := rs.Resolve("PaneButton", qss.Default)
	hov, err := rs.Resolve("PaneButton", qss.Hover)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(def.Background, hov.Background) {
		t.Error("expected rejected hover rule to fall back to default background, doesn't")
	}
}

func TestRuleSetDropsMalformedDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qss.resolve")
	defer teardown()
	//
	rs := mustRuleSet(t, `
QLabel#Caption {
    margin-top: soup;
    color: white;
}`)
	paint, err := rs.Resolve("Caption", qss.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paint.Margins.Top != 0 {
		t.Errorf("expected malformed margin to fall back to 0, is %d", paint.Margins.Top)
	}
}

func TestRuleSetIntrospection(t *testing.T) {
	rs := mustRuleSet(t, `
QLabel#Caption { color: white; }
QWidget#NavPaneTree { background-color: white; }`)
	ids := rs.WidgetIDs()
	if !reflect.DeepEqual(ids, []string{"Caption", "NavPaneTree"}) {
		t.Errorf("unexpected widget ids: %v", ids)
	}
	typ, ok := rs.WidgetType("NavPaneTree")
	if !ok || typ != "QWidget" {
		t.Errorf("expected NavPaneTree to be a QWidget, is %q (found=%v)", typ, ok)
	}
	if rs.StyleMap("Caption", qss.Hover) != nil {
		t.Error("expected no style map for Caption:hover, have one")
	}
	if rs.StyleMap("Caption", qss.Default) == nil {
		t.Error("expected a style map for Caption:default, haven't")
	}
	if rs.Empty() {
		t.Error("expected rule set not to be empty, is")
	}
}

func TestRuleSetEmptySheet(t *testing.T) {
	rs := mustRuleSet(t, "")
	if !rs.Empty() {
		t.Error("expected empty sheet to produce empty rule set, doesn't")
	}
	if _, err := rs.Resolve("Anything", qss.Default); !errors.Is(err, qss.ErrUnknownWidget) {
		t.Errorf("expected ErrUnknownWidget from empty rule set, is %v", err)
	}
}
