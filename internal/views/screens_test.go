package views

import (
	"strings"
	"testing"
)

func TestRenderLeaderboardPanelShowsTable(t *testing.T) {
	out := RenderLeaderboardPanel(LeaderboardPanelData{
		NameInputView: "> ",
		SelectedName:  "Sara",
		TableView:     "Rank  Name  Minutes\n1     Sara  75",
	})
	if !strings.Contains(out, "focusing as: Sara") {
		t.Fatalf("missing selected name line:\n%s", out)
	}
	if !strings.Contains(out, "1     Sara  75") {
		t.Fatalf("missing table view:\n%s", out)
	}
}

func TestRenderLeaderboardPanelEmptyTable(t *testing.T) {
	out := RenderLeaderboardPanel(LeaderboardPanelData{NameInputView: "> "})
	if !strings.Contains(out, "no focus minutes recorded yet") {
		t.Fatalf("missing empty placeholder:\n%s", out)
	}
	if !strings.Contains(out, "pick a name to credit focus minutes") {
		t.Fatalf("missing selection hint:\n%s", out)
	}
}
