package shell

import "testing"

func TestNavBarSyncMatchesHashAndPathRefs(t *testing.T) {
	bar := NewNavBar([]NavItem{
		{Label: "Home", TargetRef: "#home"},
		{Label: "Chat", TargetRef: "/chat"},
		{Label: "Docs", TargetRef: "/docs"},
	})

	bar.Sync("chat")
	items := bar.Items()
	if items[0].Selected || !items[1].Selected || items[2].Selected {
		t.Fatalf("selection state wrong: %+v", items)
	}

	bar.Sync("home")
	items = bar.Items()
	if !items[0].Selected || items[1].Selected || items[2].Selected {
		t.Fatalf("selection state wrong after resync: %+v", items)
	}
}

func TestNavBarSyncIsTotal(t *testing.T) {
	bar := NewNavBar([]NavItem{
		{Label: "Home", TargetRef: "#home", Selected: true},
		{Label: "Chat", TargetRef: "#chat", Selected: true},
	})

	bar.Sync("nowhere")
	for _, item := range bar.Items() {
		if item.Selected {
			t.Fatalf("item %q left selected for unknown page", item.Label)
		}
	}
}

func TestNavBarTargetPath(t *testing.T) {
	bar := NewNavBar([]NavItem{
		{Label: "Home", TargetRef: "#home"},
		{Label: "Chat", TargetRef: "/chat"},
	})

	if path, ok := bar.TargetPath(0); !ok || path != "/home" {
		t.Fatalf("target 0 = %q, %v", path, ok)
	}
	if path, ok := bar.TargetPath(1); !ok || path != "/chat" {
		t.Fatalf("target 1 = %q, %v", path, ok)
	}
	if _, ok := bar.TargetPath(5); ok {
		t.Fatal("out of range index should not resolve")
	}
}
