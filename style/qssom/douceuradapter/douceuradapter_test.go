package douceuradapter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `
QPushButton#PaneButton {
    margin: 0px;
    color: rgb(50, 77, 121);
}

QPushButton#PaneButton:hover {
    color: white;
}
`

func TestParseSheet(t *testing.T) {
	sheet, err := Parse(sample)
	require.NoError(t, err)
	require.False(t, sheet.Empty())

	rules := sheet.Rules()
	require.Len(t, rules, 2)

	require.Equal(t, "QPushButton#PaneButton", strings.TrimSpace(rules[0].Selector()))
	require.ElementsMatch(t, []string{"margin", "color"}, rules[0].Properties())
	require.EqualValues(t, "rgb(50, 77, 121)", rules[0].Value("color"))
	require.False(t, rules[0].IsImportant("color"))

	require.Equal(t, "QPushButton#PaneButton:hover", strings.TrimSpace(rules[1].Selector()))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("QLabel#Caption { color: red")
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "expected a *ParseError, have %T", err)
}

func TestParseReader(t *testing.T) {
	sheet, err := ParseReader(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, sheet.Rules(), 2)
}

func TestAppendRules(t *testing.T) {
	sheet, err := Parse(sample)
	require.NoError(t, err)
	other, err := Parse("QWidget#NavPaneTree { background-color: white; }")
	require.NoError(t, err)

	sheet.AppendRules(other)
	require.Len(t, sheet.Rules(), 3)
}

func TestParseEmpty(t *testing.T) {
	sheet, err := Parse("")
	require.NoError(t, err)
	require.True(t, sheet.Empty())
}
