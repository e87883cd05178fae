package model

import "testing"

func TestDiffScreens(t *testing.T) {
	prev := []ElementInfo{
		{Address: "wnd[0]/usr/txtA", Kind: KindText, Text: "old"},
		{Address: "wnd[0]/usr/txtB", Kind: KindText, Text: "same"},
		{Address: "wnd[0]/usr/btnGONE", Kind: KindButton},
	}
	curr := []ElementInfo{
		{Address: "wnd[0]/usr/txtA", Kind: KindText, Text: "new"},
		{Address: "wnd[0]/usr/txtB", Kind: KindText, Text: "same"},
		{Address: "wnd[0]/usr/chkNEW", Kind: KindCheckbox},
	}

	diff := DiffScreens(prev, curr)

	if len(diff.Added) != 1 || diff.Added[0].Address != "wnd[0]/usr/chkNEW" {
		t.Errorf("added = %v", diff.Added)
	}
	if len(diff.Removed) != 1 || diff.Removed[0].Address != "wnd[0]/usr/btnGONE" {
		t.Errorf("removed = %v", diff.Removed)
	}
	if len(diff.Changed) != 1 {
		t.Fatalf("changed = %v", diff.Changed)
	}
	change := diff.Changed[0]
	if change.Address != "wnd[0]/usr/txtA" {
		t.Errorf("changed address = %q", change.Address)
	}
	if got := change.Changes["text"]; got != [2]string{"old", "new"} {
		t.Errorf("text change = %v", got)
	}
	if diff.UnchangedCount != 1 {
		t.Errorf("unchanged = %d", diff.UnchangedCount)
	}
}

func TestDiffScreensChangeableFlip(t *testing.T) {
	prev := []ElementInfo{{Address: "a", Kind: KindText, Changeable: true}}
	curr := []ElementInfo{{Address: "a", Kind: KindText, Changeable: false}}

	diff := DiffScreens(prev, curr)
	if len(diff.Changed) != 1 {
		t.Fatalf("changed = %v", diff.Changed)
	}
	if got := diff.Changed[0].Changes["changeable"]; got != [2]string{"true", "false"} {
		t.Errorf("changeable change = %v", got)
	}
}

func TestFilterElements(t *testing.T) {
	elements := []ElementInfo{
		{Address: "a", Kind: KindText, Changeable: true},
		{Address: "b", Kind: KindText},
		{Address: "c", Kind: KindButton},
	}

	if got := FilterElements(elements, nil, false); len(got) != 3 {
		t.Errorf("no filter = %d elements", len(got))
	}
	if got := FilterElements(elements, []Kind{KindButton}, false); len(got) != 1 || got[0].Address != "c" {
		t.Errorf("kind filter = %v", got)
	}
	if got := FilterElements(elements, []Kind{KindText}, true); len(got) != 1 || got[0].Address != "a" {
		t.Errorf("changeable filter = %v", got)
	}
}
